package calc_test

import (
	"fmt"
	"strings"

	"github.com/zephyrtronium/calc"
)

func ExampleEvalString() {
	fmt.Println(calc.EvalString("-5 + -8 + 11*2"))
	fmt.Println(calc.EvalString("5/0"))
	fmt.Println(calc.EvalString("2 + x"))

	// Output:
	// 9 <nil>
	// 0 2: invalid division by zero
	// 0 5: 'x' is invalid
}

func ExampleCompile() {
	e, err := calc.Compile(strings.NewReader("(4 - 2) * 3.5"))
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	fmt.Println(e.Eval())

	// Output:
	// 4 2 - 3.5 *
	// 7 <nil>
}

func ExampleStopOn() {
	src := strings.NewReader("1 + 2\n1 -- 2\n")
	for i := 0; i < 2; i++ {
		fmt.Println(calc.Eval(src, calc.StopOn('\n')))
	}

	// Output:
	// 3 <nil>
	// 3 <nil>
}
