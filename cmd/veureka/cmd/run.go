package cmd

import (
	"fmt"
	"os"

	verrors "github.com/veureka-lang/veureka-go/errors"
	"github.com/veureka-lang/veureka-go/interp"
	"github.com/veureka-lang/veureka-go/lexer"
	"github.com/veureka-lang/veureka-go/parser"

	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Veureka script or expression",
	Long: `Execute a Veureka program from a file or inline expression.

Examples:
  # Run a script file
  veureka run script.ver

  # Evaluate inline code
  veureka run -e "print(1 + 2)"

  # Run with an AST dump (for debugging)
  veureka run --dump-ast script.ver`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
}

func runScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(l.Errors()) > 0 {
		for _, e := range l.Errors() {
			fmt.Fprintln(os.Stderr, verrors.New("LexError", e.Pos, e.Message, input, filename).Format(true))
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(l.Errors()))
	}
	if len(p.Errors()) > 0 {
		for _, e := range p.Errors() {
			fmt.Fprintln(os.Stderr, verrors.New("SyntaxError", e.Pos, e.Message, input, filename).Format(true))
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	i := interp.New()
	if _, err := i.Run(program); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			fmt.Fprintln(os.Stderr, verrors.New(string(rerr.Kind), rerr.Pos, rerr.Message, input, filename).Format(true))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("execution failed")
	}
	return nil
}
