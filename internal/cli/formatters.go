package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/muesli/reflow/truncate"
	"gopkg.in/yaml.v3"

	"github.com/urlscout/urlscout-cli/pkg/models"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// DefaultURLWidth caps the URL column in text tables
const DefaultURLWidth = 72

// TableFormatter helps format tabular output
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw}
}

// Header writes the table header
func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	dashes := make([]string, len(columns))
	for i, c := range columns {
		dashes[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(t.writer, strings.Join(dashes, "\t"))
}

// Row writes a table row
func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output
func (t *TableFormatter) Flush() error {
	return t.writer.Flush()
}

// OutputResults formats and outputs results based on the specified format
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(yamlData)
		return err

	case FormatText:
		_, err := fmt.Fprintf(w, "%v\n", data)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// OutputRecords writes records as a table, or as a structured document for
// json and yaml.
func OutputRecords(w io.Writer, format string, records []models.URLRecord) error {
	if OutputFormat(format) != FormatText {
		if records == nil {
			records = []models.URLRecord{}
		}
		return OutputResults(w, format, models.Dataset{URLs: records})
	}

	table := NewTableFormatter(w)
	table.Header("ID", "TYPE", "URL")
	for _, r := range records {
		table.Row(strconv.Itoa(r.ID), string(r.FileType), TruncateString(r.URL, DefaultURLWidth))
	}
	return table.Flush()
}

// OutputRecord writes a single record
func OutputRecord(w io.Writer, format string, record models.URLRecord) error {
	if OutputFormat(format) != FormatText {
		return OutputResults(w, format, record)
	}

	table := NewTableFormatter(w)
	table.Row("ID:", strconv.Itoa(record.ID))
	table.Row("Type:", string(record.FileType))
	table.Row("URL:", record.URL)
	return table.Flush()
}

// TruncateString truncates a string to maxLen cells, marking the cut
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen <= 3 {
		return truncate.String(s, uint(maxLen))
	}
	return truncate.StringWithTail(s, uint(maxLen), "...")
}
