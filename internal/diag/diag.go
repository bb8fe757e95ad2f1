// Package diag renders cfront errors for the terminal: the message, its
// location, the offending source line and a caret under the column.
package diag

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/you-not-fish/cfront/internal/syntax"
)

// Printer writes diagnostics to a writer.
type Printer struct {
	w     io.Writer
	color bool

	label    lipgloss.Style
	location lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
}

// NewPrinter returns a printer writing to w. Styling is applied only when
// color is set and w is a terminal that supports it.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	colorError := lipgloss.Color("#EF4444")
	colorMuted := lipgloss.Color("#6B7280")
	colorAccent := lipgloss.Color("#F59E0B")

	return &Printer{
		w:     w,
		color: color,

		label: r.NewStyle().
			Bold(true).
			Foreground(colorError),
		location: r.NewStyle().
			Foreground(colorAccent),
		gutter: r.NewStyle().
			Foreground(colorMuted),
		caret: r.NewStyle().
			Bold(true).
			Foreground(colorError),
	}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Position returns the source position carried by err, if any.
func Position(err error) (syntax.Pos, bool) {
	var lexErr *syntax.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Pos, true
	}
	var parseErr *syntax.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Pos, parseErr.Pos.IsValid()
	}
	return syntax.Pos{}, false
}

// Print writes err. src is the text the error refers to; when it is nil,
// or err carries no position, only the message is printed.
func (p *Printer) Print(err error, src []byte) error {
	var b strings.Builder

	pos, ok := Position(err)
	msg := err.Error()
	if ok {
		msg = strings.TrimPrefix(msg, pos.String()+": ")
	}
	fmt.Fprintf(&b, "%s %s\n", p.render(p.label, "error:"), msg)

	if ok {
		line, found := sourceLine(src, int(pos.Line()))
		num := strconv.Itoa(int(pos.Line()))
		pad := strings.Repeat(" ", len(num))

		fmt.Fprintf(&b, "%s%s %s\n", pad, p.render(p.gutter, "-->"), p.render(p.location, pos.String()))
		if found {
			bar := p.render(p.gutter, "|")
			fmt.Fprintf(&b, "%s %s\n", pad, bar)
			fmt.Fprintf(&b, "%s %s %s\n", p.render(p.gutter, num), bar, line)
			fmt.Fprintf(&b, "%s %s %s%s\n", pad, bar, caretIndent(line, int(pos.Col())), p.render(p.caret, "^"))
		}
	}

	_, werr := io.WriteString(p.w, b.String())
	return werr
}

// sourceLine returns line n (1-based) of src without its line terminator.
func sourceLine(src []byte, n int) (string, bool) {
	if src == nil || n < 1 {
		return "", false
	}
	lines := bytes.Split(src, []byte("\n"))
	if n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(string(lines[n-1]), "\r"), true
}

// caretIndent returns the blanks that put a caret under column col of line.
// Tabs are kept so the caret lines up whatever the tab width.
func caretIndent(line string, col int) string {
	var b strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
