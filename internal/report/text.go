package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle  = color.New(color.FgCyan, color.OpBold)
	sectionStyle = color.New(color.FgYellow, color.OpBold)
	noteStyle    = color.New(color.FgGray, color.OpItalic)
)

// TextRenderer writes the summary as aligned terminal tables. Color adds
// ANSI styling to headings and the note.
type TextRenderer struct {
	Color bool
}

type align int

const (
	alignLeft align = iota
	alignRight
)

type column struct {
	title string
	align align
}

// Render implements Renderer.
func (r *TextRenderer) Render(w io.Writer, rpt *Report) error {
	tw := &textWriter{w: w, color: r.Color}

	tw.header(rpt.Title)

	tw.section("Bodies")
	rows := make([][]string, 0, len(rpt.Rows))
	for _, row := range rpt.Rows {
		rows = append(rows, []string{row.Component, row.Body, row.X, row.Y, row.Z})
	}
	tw.table([]column{
		{"Component", alignLeft},
		{"Body", alignLeft},
		{"x (" + rpt.Unit + ")", alignRight},
		{"y (" + rpt.Unit + ")", alignRight},
		{"z (" + rpt.Unit + ")", alignRight},
	}, rows)

	tw.section("Total counts")
	rows = make([][]string, 0, len(rpt.Counts))
	for _, c := range rpt.Counts {
		rows = append(rows, []string{c.Dimensions, strconv.Itoa(c.Count)})
	}
	tw.table([]column{
		{"Dimensions", alignLeft},
		{"Count", alignRight},
	}, rows)

	tw.section("Total lengths")
	rows = make([][]string, 0, len(rpt.Lengths))
	for _, l := range rpt.Lengths {
		rows = append(rows, []string{l.Dimensions, FormatTotal(l.Total)})
	}
	tw.table([]column{
		{"Dimensions (" + rpt.Unit + ")", alignLeft},
		{"Total length (" + rpt.Unit + ")", alignRight},
	}, rows)

	if note := HiddenNote(rpt.HiddenCount); note != "" {
		tw.println()
		tw.println(tw.paint(noteStyle, note))
	}

	return tw.err
}

// textWriter keeps the first write error so rendering code stays linear.
type textWriter struct {
	w     io.Writer
	color bool
	err   error
}

func (t *textWriter) println(parts ...string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, strings.Join(parts, ""))
}

func (t *textWriter) paint(style color.Style, s string) string {
	if !t.color {
		return s
	}
	return style.Sprint(s)
}

func (t *textWriter) header(title string) {
	rule := strings.Repeat("=", runewidth.StringWidth(title)+4)
	t.println(t.paint(headerStyle, rule))
	t.println(t.paint(headerStyle, "  "+title))
	t.println(t.paint(headerStyle, rule))
}

func (t *textWriter) section(title string) {
	t.println()
	t.println(t.paint(sectionStyle, "["+title+"]"))
	t.println(strings.Repeat("-", runewidth.StringWidth(title)+2))
}

// table pads on display width so wide runes in names keep columns aligned.
func (t *textWriter) table(cols []column, rows [][]string) {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.title)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(cells []string) string {
		out := make([]string, len(cells))
		for i, cell := range cells {
			if cols[i].align == alignRight {
				out[i] = runewidth.FillLeft(cell, widths[i])
			} else {
				out[i] = runewidth.FillRight(cell, widths[i])
			}
		}
		return "  " + strings.TrimRight(strings.Join(out, "  "), " ")
	}

	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
	}
	t.println(line(titles))
	for _, row := range rows {
		t.println(line(row))
	}
}
