// Package errors formats Veureka diagnostics — lex, syntax, and runtime
// errors alike — with source context and a caret pointing at the offending
// column, for display by the CLI and REPL.
package errors

import (
	"fmt"
	"strings"

	"github.com/veureka-lang/veureka-go/token"
)

// SourceError is a single diagnostic with enough context to render a
// source snippet: what went wrong, where, and (optionally) which file.
type SourceError struct {
	Kind    string // "LexError", "SyntaxError", "NameError", ...
	Message string
	Source  string
	File    string
	Pos     token.Position
}

func New(kind string, pos token.Position, message, source, file string) *SourceError {
	return &SourceError{Kind: kind, Message: message, Source: source, File: file, Pos: pos}
}

func (e *SourceError) Error() string {
	return e.Format(false)
}

// Format renders the error with a line/column header, the offending source
// line, and a caret underneath pointing at the column. color enables ANSI
// escapes for terminal output.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%s\n", e.Kind, e.File, e.Pos))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %s\n", e.Kind, e.Pos))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *SourceError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a batch of errors, numbering them when there is more
// than one (mirrors the single-error case exactly when len == 1).
func FormatAll(errs []*SourceError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s):\n\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("[%d of %d]\n", i+1, len(errs)))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
