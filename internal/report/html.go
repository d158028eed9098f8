package report

import (
	"html/template"
	"io"
)

// The fragment is a single line of markup; keep the template free of
// newlines between tags.
const (
	thLeft    = `<th style="text-align:left;">`
	thRight   = `<th style="text-align:right;">`
	tdName    = `<td style="text-align:left;padding-right:15px">`
	tdDim     = `<td style="text-align:right;padding-left: 15px;">`
	tdTotal   = `<td style="text-align:right;padding-left:15px">`
	htmlTable = `{{define "fragment"}}` +
		`<table>` +
		`<tr>` +
		thLeft + `Component</th>` +
		thLeft + `Body</th>` +
		thRight + `x ({{.Unit}})</th>` +
		thRight + `y ({{.Unit}})</th>` +
		thRight + `z ({{.Unit}})</th>` +
		`</tr>` +
		`{{range .Rows}}<tr>` +
		tdName + `{{.Component}}</td>` +
		tdName + `{{.Body}}</td>` +
		tdDim + `{{.X}}</td>` +
		tdDim + `{{.Y}}</td>` +
		tdDim + `{{.Z}}</td>` +
		`</tr>{{end}}` +
		`</table>` +
		`<h2>Total counts</h2>` +
		`<table>` +
		`<tr>` +
		thLeft + `Dimensions</th>` +
		thRight + `Count</th></tr>` +
		`{{range .Counts}}<tr>` +
		tdName + `{{.Dimensions}}</td>` +
		tdTotal + `{{.Count}}</td>` +
		`</tr>{{end}}` +
		`</table>` +
		`<h2>Total lengths</h2>` +
		`<table>` +
		`<tr>` +
		thLeft + `Dimensions ({{.Unit}})</th>` +
		thRight + `Total length ({{.Unit}})</th>` +
		`</tr>` +
		`{{range .Lengths}}<tr>` +
		tdName + `{{.Dimensions}}</td>` +
		tdTotal + `{{total .Total}}</td>` +
		`</tr>{{end}}` +
		`</table>` +
		`{{with hiddenNote .HiddenCount}}<br/><br/><i>{{.}}</i>{{end}}` +
		`{{end}}` +
		`{{define "document"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{template "fragment" .}}
</body>
</html>
{{end}}`
)

var htmlTemplates = template.Must(template.New("report").Funcs(template.FuncMap{
	"total":      FormatTotal,
	"hiddenNote": HiddenNote,
}).Parse(htmlTable))

// HTMLRenderer writes the summary as HTML. By default it emits the bare
// fragment a host message box displays; Standalone wraps it in a document.
// Names are HTML-escaped.
type HTMLRenderer struct {
	Standalone bool
}

// Render implements Renderer.
func (r *HTMLRenderer) Render(w io.Writer, rpt *Report) error {
	name := "fragment"
	if r.Standalone {
		name = "document"
	}
	return htmlTemplates.ExecuteTemplate(w, name, rpt)
}
