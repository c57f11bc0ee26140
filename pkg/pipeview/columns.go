package pipeview

import "strconv"

// Column describes how a pipe becomes a table cell
type Column struct {
	Title string
	Value func(p DisplayPipe) string
}

// Columns is the fixed column layout of the pipes table. Missing
// listener or endpoint render as empty cells.
var Columns = []Column{
	{
		Title: "Id",
		Value: func(p DisplayPipe) string { return string(p.ID) },
	},
	{
		Title: "Listener IP",
		Value: func(p DisplayPipe) string {
			if p.Listener == nil {
				return ""
			}
			return p.Listener.IP
		},
	},
	{
		Title: "Listener Port",
		Value: func(p DisplayPipe) string {
			if p.Listener == nil {
				return ""
			}
			return strconv.Itoa(p.Listener.Port)
		},
	},
	{
		Title: "Endpoint Host",
		Value: func(p DisplayPipe) string {
			if p.Endpoint == nil {
				return ""
			}
			return p.Endpoint.Host
		},
	},
	{
		Title: "Endpoint Port",
		Value: func(p DisplayPipe) string {
			if p.Endpoint == nil {
				return ""
			}
			return strconv.Itoa(p.Endpoint.Port)
		},
	},
}

// Headers returns the column titles
func Headers() []string {
	res := make([]string, len(Columns))
	for i, c := range Columns {
		res[i] = c.Title
	}
	return res
}

// Project returns the table row of a pipe
func Project(p DisplayPipe) []string {
	row := make([]string, len(Columns))
	for i, c := range Columns {
		row[i] = c.Value(p)
	}
	return row
}

// Rows projects a whole list, keeping its order
func Rows(pipes []DisplayPipe) [][]string {
	rows := make([][]string, len(pipes))
	for i, p := range pipes {
		rows[i] = Project(p)
	}
	return rows
}
