// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfstat

import (
	"bytes"
	"html/template"

	"github.com/aclements/go-gg/table"
)

var htmlTemplate = template.Must(template.New("").Parse(`
{{- range . -}}
<table class='perfstat'>
<caption>{{.Title}}</caption>
<tr>{{range .Cols}}<th>{{.}}{{end}}
{{range .Rows -}}
<tr>{{range .}}<td>{{.}}{{end}}
{{end -}}
</table>
{{end -}}
`))

type htmlTable struct {
	Title string
	Cols  []string
	Rows  [][]string
}

// FormatHTML appends an HTML rendering of the aggregate tables to buf.
func (ts *Tables) FormatHTML(buf *bytes.Buffer) {
	data := []htmlTable{
		{"mean by configuration", ts.AggCols(), rowStrings(ts.Mean, ts.AggCols())},
		{"standard deviation by configuration", ts.AggCols(), rowStrings(ts.Std, ts.AggCols())},
	}
	err := htmlTemplate.Execute(buf, data)
	if err != nil {
		// Only possible errors here are template not matching data structure.
		// Don't make caller check - it's our fault.
		panic(err)
	}
}

func rowStrings(t *table.Table, cols []string) [][]string {
	rows := make([][]string, t.Len())
	for i := range rows {
		row := make([]string, len(cols))
		for j, col := range cols {
			s, err := cell(t, col, i)
			if err != nil {
				panic(err)
			}
			row[j] = s
		}
		rows[i] = row
	}
	return rows
}
