// Package htmlview renders one page of the desktop table as a static html document.
package htmlview

import (
	"embed"
	"fmt"
	"io"

	"github.com/google/safehtml/template"
	"github.com/pkg/errors"

	nt "zupos/entity"
	"zupos/grid"
	"zupos/pagination"
	"zupos/style"
)

//go:embed templates/*
var templateFS embed.FS

// Options are the page level settings of an export.
type Options struct {
	Title  string
	Empty  grid.Empty
	Status style.StatusLabels
}

// Header is a column heading, Arrow marks the sorted column.
type Header struct {
	Label string
	Arrow string
}

// Cell is one table cell; Status is "on", "off" or empty.
type Cell struct {
	Text   string
	Align  nt.Align
	Status string
}

// Page is the view model handed to the template.
type Page struct {
	Title   string
	Headers []Header
	Rows    [][]Cell
	Empty   grid.Empty
	Summary string
}

// Build runs rows through the grid pipeline and projects the visible page.
func Build[R nt.Row](opt Options, columns []nt.Column, rows []R, filters []nt.Filter, st nt.Sort, pgn pagination.Config) Page {

	labels := opt.Status
	if labels == (style.StatusLabels{}) {
		labels = style.DefaultStatusLabels
	}

	all := grid.Compute(rows, filters, st, 0, 0)
	ctl := pgn.New(all.Filtered, nil)
	result := grid.Compute(rows, filters, st, ctl.Page(), ctl.PageSize())

	page := Page{
		Title: opt.Title,
		Empty: opt.Empty,
	}

	for _, col := range columns {
		hdr := Header{Label: col.Label}
		if col.Sortable && st.Field != "" && st.Field == col.Field {
			hdr.Arrow = "▲"
			if st.Desc {
				hdr.Arrow = "▼"
			}
		}
		page.Headers = append(page.Headers, hdr)
	}

	for _, row := range result.Visible {
		cells := make([]Cell, len(columns))
		for i, col := range columns {
			cells[i] = cell(nt.Value{Raw: row.Value(col.Field)}, col, labels)
		}
		page.Rows = append(page.Rows, cells)
	}

	page.Summary = fmt.Sprintf("%d–%d of %d · page %d/%d",
		ctl.StartIndex(), ctl.EndIndex(), ctl.Total(), ctl.Page()+1, max(ctl.TotalPages(), 1))
	if ctl.Total() == 0 {
		page.Summary = "0 of 0"
	}

	return page
}

// Renderer executes the table template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded template.
func NewRenderer() (rdr *Renderer, err error) {

	trusted := template.TrustedFSFromEmbed(templateFS)

	tmpl, err := template.New("table.html").ParseFS(trusted, "templates/table.html")
	if err != nil {
		err = errors.Wrapf(err, "failed to parse table template")
		return
	}

	rdr = &Renderer{tmpl: tmpl}
	return
}

// Render writes page to w.
func (rdr *Renderer) Render(w io.Writer, page Page) (err error) {

	err = rdr.tmpl.Execute(w, page)
	err = errors.Wrapf(err, "failed to render %s", page.Title)
	return
}

// unexported

func cell(val nt.Value, col nt.Column, labels style.StatusLabels) Cell {

	out := Cell{Text: val.Display(), Align: col.Align}

	on, err := val.Bool()
	if err != nil {
		return out
	}

	out.Text = labels.False
	out.Status = "off"
	if on {
		out.Text = labels.True
		out.Status = "on"
	}
	return out
}
