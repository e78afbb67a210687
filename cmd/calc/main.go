package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

const (
	prompt  = "Enter a mathematical expression in infix notation."
	noInput = "No input was given."
)

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run executes the command and returns the exit status.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	var (
		inname, verb string
		nl, echo     bool
	)
	flags := flag.NewFlagSet("calc", flag.ContinueOnError)
	flags.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flags.StringVar(&verb, "fmt", "%g", "result formatting string")
	flags.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flags.BoolVar(&echo, "echo", false, "print expressions in postfix order")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var ins []io.RuneScanner
	in, err := infile(inname, flags.NArg() == 0, stdin, stdout)
	if err != nil {
		log.Print(err)
		return 1
	}
	if in != nil {
		ins = append(ins, in)
	}
	if flags.NArg() > 0 {
		// Arguments are one expression, however the shell split them.
		ins = append(ins, strings.NewReader(strings.Join(flags.Args(), "")))
	}

	var opts []calc.TokenizeOption
	if nl {
		opts = append(opts, calc.StopOn('\n'))
	}
	verb = "%s = " + verb + "\n"
	status, n := 0, 0
	for _, in := range ins {
		rec := &recorder{src: in}
		for {
			// First check whether we're done with the input.
			if _, _, err := rec.ReadRune(); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				log.Print(err)
				return 1
			}
			rec.UnreadRune()
			a, err := calc.Compile(rec, opts...)
			if err != nil {
				var ie calc.InputError
				if !errors.As(err, &ie) {
					log.Print(err)
					return 1
				}
				rec.skip(nl)
				fmt.Fprintln(stdout, ie)
				status = 1
				n++
				continue
			}
			text := strings.TrimSpace(rec.reset())
			if text == "" {
				continue
			}
			n++
			if echo {
				fmt.Fprintf(stdout, "%v : ", a)
			}
			r, err := a.Eval()
			if err != nil {
				fmt.Fprintln(stdout, err)
				status = 1
				continue
			}
			fmt.Fprintf(stdout, verb, text, r)
		}
	}
	if n == 0 {
		fmt.Fprintln(stdout, noInput)
	}
	return status
}

// infile selects the input other than arguments. If std is true and no file
// is named, the input is stdin. An interactive stdin gets a prompt and
// supplies only one line.
func infile(inname string, std bool, stdin io.Reader, stdout io.Writer) (io.RuneScanner, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return bufio.NewReader(f), nil
	case inname == "-", std:
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fmt.Fprintln(stdout, prompt)
			line, err := bufio.NewReader(f).ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return strings.NewReader(line), nil
		}
		return bufio.NewReader(stdin), nil
	}
	return nil, nil
}

// recorder is a rune scanner that remembers the text of the expression being
// read.
type recorder struct {
	src io.RuneScanner
	buf []rune
}

func (r *recorder) ReadRune() (rune, int, error) {
	c, sz, err := r.src.ReadRune()
	if err == nil {
		r.buf = append(r.buf, c)
	}
	return c, sz, err
}

func (r *recorder) UnreadRune() error {
	if err := r.src.UnreadRune(); err != nil {
		return err
	}
	r.buf = r.buf[:len(r.buf)-1]
	return nil
}

// reset returns the recorded text and starts recording anew.
func (r *recorder) reset() string {
	s := string(r.buf)
	r.buf = r.buf[:0]
	return s
}

// skip discards the rest of an expression that failed to compile. If lines
// is true, that is the rest of the line; otherwise it is the rest of the
// input.
func (r *recorder) skip(lines bool) {
	defer r.reset()
	if lines && len(r.buf) > 0 && r.buf[len(r.buf)-1] == '\n' {
		return
	}
	for {
		c, _, err := r.src.ReadRune()
		if err != nil || lines && c == '\n' {
			return
		}
	}
}
