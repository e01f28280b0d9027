package interp

import (
	"os"
	"path/filepath"

	"github.com/veureka-lang/veureka-go/ast"
	"github.com/veureka-lang/veureka-go/lexer"
	"github.com/veureka-lang/veureka-go/parser"
)

// evalInclude loads another source file and splices its top-level
// definitions into the caller's current scope — not a nested scope, and not
// namespaced under the included file's name (spec.md §4.3). There is no
// cycle guard: an include loop runs until the process exhausts its stack,
// matching the reference implementation's unguarded recursion (an accepted
// open question — see DESIGN.md).
func (i *Interpreter) evalInclude(n *ast.Include, env *Environment) (Value, error) {
	resolved, err := resolveIncludePath(n.Path)
	if err != nil {
		return nil, newError(KindLoad, n.Pos(), "cannot find include %q", n.Path)
	}
	src, err := os.ReadFile(resolved)
	if err != nil {
		return nil, newError(KindLoad, n.Pos(), "cannot read %q: %s", n.Path, err)
	}

	l := lexer.New(string(src))
	p := parser.New(l)
	prog := p.ParseProgram()
	if len(l.Errors()) > 0 {
		return nil, newError(KindLoad, n.Pos(), "%s: lex error: %s", n.Path, l.Errors()[0])
	}
	if len(p.Errors()) > 0 {
		return nil, newError(KindLoad, n.Pos(), "%s: syntax error: %s", n.Path, p.Errors()[0])
	}

	v, err := i.evalBlock(prog.Statements, env)
	if err != nil {
		if rerr, ok := err.(*RuntimeError); ok {
			return nil, newError(KindLoad, n.Pos(), "%s: %s", n.Path, rerr.Message)
		}
		return nil, err
	}
	return v, nil
}

// resolveIncludePath tries, in order (spec.md §6 "include path resolution"):
// the verbatim path, the path joined with the process's working directory,
// and the path joined with a sibling lib/ directory of the interpreter
// executable. A bare name with no extension has ".ver" appended.
func resolveIncludePath(path string) (string, error) {
	if filepath.Ext(path) == "" {
		path += ".ver"
	}

	candidates := []string{path}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, path))
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "lib", path))
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", os.ErrNotExist
}
