package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	verrors "github.com/veureka-lang/veureka-go/errors"
	"github.com/veureka-lang/veureka-go/interp"
	"github.com/veureka-lang/veureka-go/lexer"
	"github.com/veureka-lang/veureka-go/parser"

	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [name]",
	Short: "Run the bundled demonstration programs",
	Long: `Run one or all of the demonstration programs in the examples/
directory (closures, classes, recursion, and include).

With no argument, every example runs in sequence. With a name (with or
without the .ver extension), only that one runs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

// findExamplesDir looks for an examples/ directory next to the current
// working directory first, then next to the running executable — so
// `veureka examples` works both from a source checkout and an installed
// binary.
func findExamplesDir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		if info, err := os.Stat(filepath.Join(cwd, "examples")); err == nil && info.IsDir() {
			return filepath.Join(cwd, "examples"), nil
		}
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "examples")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("no examples/ directory found")
}

func runExamples(_ *cobra.Command, args []string) error {
	dir, err := findExamplesDir()
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".ver" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(args) == 1 {
		target := args[0]
		if filepath.Ext(target) == "" {
			target += ".ver"
		}
		found := false
		for _, n := range names {
			if n == target {
				names = []string{n}
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no example named %q in %s", args[0], dir)
		}
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		fmt.Printf("=== %s ===\n", name)
		if err := runExampleSource(name, string(src)); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

func runExampleSource(name, src string) error {
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(l.Errors()) > 0 {
		fmt.Println(verrors.New("LexError", l.Errors()[0].Pos, l.Errors()[0].Message, src, name).Format(true))
		return fmt.Errorf("%s: lexing failed", name)
	}
	if len(p.Errors()) > 0 {
		fmt.Println(verrors.New("SyntaxError", p.Errors()[0].Pos, p.Errors()[0].Message, src, name).Format(true))
		return fmt.Errorf("%s: parsing failed", name)
	}

	i := interp.New()
	if _, err := i.Run(program); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			fmt.Println(verrors.New(string(rerr.Kind), rerr.Pos, rerr.Message, src, name).Format(true))
		} else {
			fmt.Println(err)
		}
		return fmt.Errorf("%s: execution failed", name)
	}
	return nil
}
