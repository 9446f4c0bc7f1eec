// Package output formats command line output.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	cyan   = "\033[36m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolInfo    = "*"
)

// Printer writes styled messages to a writer. Colors are used only when the
// writer is a terminal and NO_COLOR is unset.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer for w.
func New(w io.Writer) *Printer {
	return &Printer{w: w, color: ColorsEnabled(w)}
}

// ColorsEnabled reports whether w should receive ANSI colors.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled(w io.Writer) bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (p *Printer) style(code, text string) string {
	if !p.color {
		return text
	}
	return code + text + reset
}

// Bold returns text in bold.
func (p *Printer) Bold(text string) string { return p.style(bold, text) }

// Line prints text followed by a newline.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.w, text)
}

// Success prints a success message.
func (p *Printer) Success(message string) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(green, SymbolSuccess), p.style(green, message))
}

// Error prints an error message.
func (p *Printer) Error(message string) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(red, SymbolError), p.style(red, message))
}

// Info prints an informational message.
func (p *Printer) Info(message string) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(cyan, SymbolInfo), p.style(cyan, message))
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
