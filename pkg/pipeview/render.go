package pipeview

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)

// RenderTable writes the pipes table to w. If width is greater than
// zero the table is fit into it
func RenderTable(w io.Writer, pipes []DisplayPipe, width int) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(Headers()...).
		Rows(Rows(pipes)...)
	if width > 0 {
		t = t.Width(width)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	if len(pipes) == 0 {
		_, err := fmt.Fprintln(w, emptyStyle.Render("no pipes"))
		return err
	}
	return nil
}

type outputItem struct {
	Key          *int   `json:"key" yaml:"key"`
	ID           string `json:"Id" yaml:"Id"`
	ListenerIP   string `json:"Listener IP" yaml:"Listener IP"`
	ListenerPort string `json:"Listener Port" yaml:"Listener Port"`
	EndpointHost string `json:"Endpoint Host" yaml:"Endpoint Host"`
	EndpointPort string `json:"Endpoint Port" yaml:"Endpoint Port"`
}

func toOutput(pipes []DisplayPipe) []outputItem {
	items := make([]outputItem, len(pipes))
	for i, p := range pipes {
		row := Project(p)
		items[i] = outputItem{
			ID:           row[0],
			ListenerIP:   row[1],
			ListenerPort: row[2],
			EndpointHost: row[3],
			EndpointPort: row[4],
		}
		if p.KeyValid {
			key := p.Key
			items[i].Key = &key
		}
	}
	return items
}

// RenderJSON writes the projected pipes as a json array
func RenderJSON(w io.Writer, pipes []DisplayPipe) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toOutput(pipes))
}

// RenderYAML writes the projected pipes as a yaml sequence
func RenderYAML(w io.Writer, pipes []DisplayPipe) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toOutput(pipes)); err != nil {
		return err
	}
	return enc.Close()
}

// Render dispatches on the output format name
func Render(w io.Writer, format string, pipes []DisplayPipe, width int) error {
	switch format {
	case "table", "":
		return RenderTable(w, pipes, width)
	case "json":
		return RenderJSON(w, pipes)
	case "yaml":
		return RenderYAML(w, pipes)
	}
	return fmt.Errorf("unsupported output format %q", format)
}
