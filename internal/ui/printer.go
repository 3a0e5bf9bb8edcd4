// Package ui prints output tables and run errors to the terminal.
package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nmentz/FAERS-Correlation-Analysis/internal/core"
)

var (
	Muted       = lipgloss.Color("#6b7280")
	Destructive = lipgloss.Color("#e53935")
	Info        = lipgloss.Color("#2196F3")
)

// Styles groups the styles the printer uses.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Number lipgloss.Style
	Border lipgloss.Style
	Error  lipgloss.Style
	Detail lipgloss.Style
}

// NewStyles builds the styles against a renderer, so color output follows
// the destination writer rather than stdout.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:  r.NewStyle().Bold(true).Foreground(Info),
		Header: r.NewStyle().Bold(true).Padding(0, 1),
		Cell:   r.NewStyle().Padding(0, 1),
		Number: r.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		Border: r.NewStyle().Foreground(Muted),
		Error:  r.NewStyle().Bold(true).Foreground(Destructive),
		Detail: r.NewStyle().Foreground(Muted),
	}
}

// Printer writes tables and errors to w.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter returns a printer for w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: NewStyles(lipgloss.NewRenderer(w))}
}

// Render returns the table as text: the label, then one row per drug in
// tracker order.
func (p *Printer) Render(t core.OutputTable) string {
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = []string{
			strconv.Itoa(i),
			r.DrugName,
			strconv.Itoa(r.Reports),
			strconv.FormatFloat(r.Budget, 'f', 1, 64),
		}
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.styles.Border).
		Headers("", "Drug Name", "Reports", "Budget").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return p.styles.Header
			case col == 1:
				return p.styles.Cell
			default:
				return p.styles.Number
			}
		})

	return p.styles.Title.Render(t.Label) + "\n" + tbl.Render()
}

// Table prints one output table followed by a blank line.
func (p *Printer) Table(t core.OutputTable) error {
	_, err := fmt.Fprintf(p.w, "%s\n\n", p.Render(t))
	return err
}

// Tables prints every table in order.
func (p *Printer) Tables(tables []core.OutputTable) error {
	for _, t := range tables {
		if err := p.Table(t); err != nil {
			return err
		}
	}
	return nil
}

// Error prints the coded user message for err and the technical error
// beneath it.
func (p *Printer) Error(err error) error {
	ue := core.NewUserError(err)
	if ue == nil {
		return nil
	}
	_, werr := fmt.Fprintf(p.w, "%s\n%s\n",
		p.styles.Error.Render("Error: "+ue.Summary()),
		p.styles.Detail.Render("  "+ue.Technical.Error()),
	)
	return werr
}
