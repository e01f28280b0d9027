package interp

import "github.com/veureka-lang/veureka-go/ast"

// Interpreter holds the state that survives across a REPL session: the
// top-level scope and the fixed builtin table. Reset discards the former
// without touching the latter, matching spec.md §6's fresh_interpreter/reset
// library operations.
type Interpreter struct {
	globals  *Environment
	builtins map[string]Value
}

// New builds an interpreter with a fresh top-level scope and the standard
// builtin table installed.
func New() *Interpreter {
	i := &Interpreter{
		globals:  NewEnvironment(),
		builtins: make(map[string]Value),
	}
	installBuiltins(i.builtins)
	return i
}

// Reset discards all top-level bindings, as if the interpreter had just
// been constructed, while keeping builtins (spec.md §6 "reset").
func (i *Interpreter) Reset() {
	i.globals = NewEnvironment()
}

// Run evaluates program in the top-level scope, returning the value of its
// last statement (used by the REPL to echo expression results and by the
// `run` command to surface a trailing RuntimeError).
func (i *Interpreter) Run(program *ast.Program) (Value, error) {
	return i.evalBlock(program.Statements, i.globals)
}
