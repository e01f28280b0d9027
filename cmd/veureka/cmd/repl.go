package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	verrors "github.com/veureka-lang/veureka-go/errors"
	"github.com/veureka-lang/veureka-go/interp"
	"github.com/veureka-lang/veureka-go/lexer"
	"github.com/veureka-lang/veureka-go/parser"

	"github.com/spf13/cobra"
)

const prompt = "veureka> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Veureka session",
	Long: `Start a read-eval-print loop. Each line is parsed and evaluated on
its own in a persistent top-level scope, so definitions from one entry are
visible in the next. Input is not collected across lines: a construct such
as a block 'fn ... end' must be written on a single line.

Meta-commands:
  clear   reset the session's top-level scope
  exit    leave the REPL`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	i := interp.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Veureka REPL. Type 'exit' to quit, 'clear' to reset.")
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit":
			return nil
		case "clear":
			i.Reset()
			continue
		}

		l := lexer.New(line)
		p := parser.New(l)
		program := p.ParseProgram()

		if len(l.Errors()) > 0 {
			fmt.Fprintln(os.Stderr, verrors.New("LexError", l.Errors()[0].Pos, l.Errors()[0].Message, line, "").Format(true))
			continue
		}
		if len(p.Errors()) > 0 {
			fmt.Fprintln(os.Stderr, verrors.New("SyntaxError", p.Errors()[0].Pos, p.Errors()[0].Message, line, "").Format(true))
			continue
		}

		result, err := i.Run(program)
		if err != nil {
			if rerr, ok := err.(*interp.RuntimeError); ok {
				fmt.Fprintln(os.Stderr, verrors.New(string(rerr.Kind), rerr.Pos, rerr.Message, line, "").Format(true))
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}
		if result != nil {
			fmt.Println(result.String())
		}
	}
}
