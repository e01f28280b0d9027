package interp

// Control signals implement error so every Eval call keeps the same
// (Value, error) shape; loops and calls distinguish them from a
// *RuntimeError with a type switch. This is the "tagged control outcome"
// spec.md §4.3 and §9 recommend in place of threading an explicit status
// value through every evaluation.

// returnSignal unwinds to the call frame that is currently executing.
type returnSignal struct{ Value Value }

func (r *returnSignal) Error() string { return "return outside function" }

// breakSignal unwinds to the nearest enclosing loop and terminates it.
type breakSignal struct{}

func (breakSignal) Error() string { return "break outside loop" }

// continueSignal unwinds to the nearest enclosing loop and advances it to
// its next iteration.
type continueSignal struct{}

func (continueSignal) Error() string { return "continue outside loop" }
