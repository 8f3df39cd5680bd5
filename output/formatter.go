// Package output renders quotes as tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/s0up4200/quotekit/quotable"
)

// Format types for output.
type Format string

const (
	FormatTable Format = "table"
	FormatWide  Format = "wide"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// contentWidth truncates quote content in the narrow table.
const contentWidth = 60

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates appropriate formatter based on format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatWide:
		return &TableFormatter{Wide: true}
	default:
		return &TableFormatter{}
	}
}

// DetectFormat returns explicit when set, otherwise table for a terminal
// and JSON for pipes and redirects.
func DetectFormat(explicit string) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (must be table, wide, json or yaml)", s)
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	out, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// TableFormatter outputs quotes as a table. Wide adds columns and keeps
// content untruncated.
type TableFormatter struct {
	Wide bool
}

var titleCaser = cases.Title(language.English)

// Format accepts *quotable.Quote, []quotable.Quote and *quotable.Quotes;
// anything else is written as JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case *quotable.Quote:
		if v == nil {
			return f.render(w, nil)
		}
		return f.render(w, []quotable.Quote{*v})
	case quotable.Quote:
		return f.render(w, []quotable.Quote{v})
	case []quotable.Quote:
		return f.render(w, v)
	case *quotable.Quotes:
		if v == nil {
			return f.render(w, nil)
		}
		if err := f.render(w, v.Results); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "Page %d of %d (%d total)\n", v.Page, v.TotalPages, v.TotalCount)
		return err
	default:
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}
}

func (f *TableFormatter) headers() []string {
	cols := []string{"id", "author", "length", "tags", "content"}
	if f.Wide {
		cols = []string{"id", "author", "author slug", "length", "tags", "date added", "content"}
	}
	for i, c := range cols {
		cols[i] = titleCaser.String(c)
	}
	return cols
}

func (f *TableFormatter) row(q quotable.Quote) []any {
	tags := strings.Join(q.Tags, ", ")
	if f.Wide {
		return []any{q.ID, q.Author, q.AuthorSlug, strconv.Itoa(q.Length), tags, q.DateAdded, q.Content}
	}
	return []any{q.ID, q.Author, strconv.Itoa(q.Length), tags, truncate(q.Content, contentWidth)}
}

func (f *TableFormatter) render(w io.Writer, quotes []quotable.Quote) error {
	table := tablewriter.NewTable(w)

	headers := f.headers()
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	table.Header(header...)

	for _, q := range quotes {
		if err := table.Append(f.row(q)...); err != nil {
			return err
		}
	}

	return table.Render()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
