package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// PrinterOptions contains options for result output
type PrinterOptions struct {
	Format OutputFormat
	Quiet  bool
	// Out defaults to os.Stdout.
	Out io.Writer
}

// Printer renders command results as a table, JSON or YAML.
type Printer struct {
	options PrinterOptions
}

// NewPrinter creates a new printer
func NewPrinter(options PrinterOptions) *Printer {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return &Printer{options: options}
}

// Format returns the printer's output format.
func (p *Printer) Format() OutputFormat {
	return p.options.Format
}

// Print writes data in the configured format. Table output goes through the
// data's JSON form, so json tags decide column names.
func (p *Printer) Print(data any) error {
	switch p.options.Format {
	case OutputFormatJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(p.options.Out, string(out))
		return err
	case OutputFormatYAML:
		return p.outputYAML(data)
	case OutputFormatTable:
		return p.outputTable(data)
	default:
		return fmt.Errorf("unsupported output format: %s", p.options.Format)
	}
}

// Message prints an informational line in table mode unless quiet. JSON and
// YAML output stay machine readable.
func (p *Printer) Message(format string, args ...any) {
	if p.options.Quiet || p.options.Format != OutputFormatTable {
		return
	}
	fmt.Fprintf(p.options.Out, format+"\n", args...)
}

// outputYAML re-encodes data's JSON form as YAML so both formats use the same keys
func (p *Printer) outputYAML(data any) error {
	generic, err := toGeneric(data)
	if err != nil {
		return err
	}

	yamlData, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}

	_, err = fmt.Fprint(p.options.Out, string(yamlData))
	return err
}

// outputTable formats data as a table
func (p *Printer) outputTable(data any) error {
	generic, err := toGeneric(data)
	if err != nil {
		return err
	}

	switch d := generic.(type) {
	case map[string]any:
		return p.formatTableFromObject(d)
	case []any:
		return p.formatTableFromArray(d)
	case nil:
		p.Message("%s", text.FgYellow.Sprint("No results"))
		return nil
	default:
		_, err := fmt.Fprintln(p.options.Out, d)
		return err
	}
}

func toGeneric(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return generic, nil
}

// formatTableFromObject handles wrapper objects like {"offers": [...], "total": N}
func (p *Printer) formatTableFromObject(data map[string]any) error {
	arrayKey := p.findArrayKey(data)
	if arrayKey == "" {
		return p.formatKeyValueTable(data)
	}

	if err := p.formatTableFromArray(data[arrayKey].([]any)); err != nil {
		return err
	}
	if total, ok := data["total"]; ok {
		p.Message("\n%s %v %s",
			text.FgHiBlue.Sprint("Total:"),
			text.FgHiWhite.Sprint(total),
			arrayKey)
	}
	return nil
}

// findArrayKey looks for common array keys in wrapped objects
func (p *Printer) findArrayKey(data map[string]any) string {
	arrayKeys := []string{"offers", "routes", "protocols", "problems", "items"}

	for _, key := range arrayKeys {
		if value, exists := data[key]; exists {
			if _, isArray := value.([]any); isArray {
				return key
			}
		}
	}
	return ""
}

// formatTableFromArray creates a table from an array of objects
func (p *Printer) formatTableFromArray(data []any) error {
	if len(data) == 0 {
		p.Message("%s", text.FgYellow.Sprint("No items found"))
		return nil
	}

	firstObj, ok := data[0].(map[string]any)
	if !ok {
		return p.formatSimpleList(data)
	}

	columns := p.columns(firstObj)

	t := table.NewWriter()
	t.SetOutputMirror(p.options.Out)
	t.SetStyle(table.StyleRounded)

	headers := make(table.Row, len(columns))
	for i, col := range columns {
		headers[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t.AppendHeader(headers)

	for _, item := range data {
		if itemMap, ok := item.(map[string]any); ok {
			row := make(table.Row, len(columns))
			for i, col := range columns {
				row[i] = p.formatCellValue(col, itemMap[col])
			}
			t.AppendRow(row)
		}
	}

	t.Render()
	return nil
}

// columns puts well-known columns first, in a fixed order, followed by the
// remaining keys sorted by name.
func (p *Printer) columns(sample map[string]any) []string {
	priority := []string{"rank", "name", "kind", "factory", "from", "to", "type", "protocol", "provides", "route", "adapters", "field", "status", "message"}

	var columns []string
	for _, col := range priority {
		if _, ok := sample[col]; ok {
			columns = append(columns, col)
		}
	}

	var remaining []string
	for key := range sample {
		if !contains(columns, key) {
			remaining = append(remaining, key)
		}
	}
	sort.Strings(remaining)
	return append(columns, remaining...)
}

// formatCellValue formats individual cell values with appropriate styling
func (p *Printer) formatCellValue(column string, value any) any {
	if value == nil {
		return text.FgHiBlack.Sprint("-")
	}

	strValue := fmt.Sprintf("%v", value)

	switch strings.ToLower(column) {
	case "status":
		return p.formatStatus(strValue)
	case "provides":
		return p.formatProvides(value)
	case "parents", "sources", "factories", "ancestors":
		return p.formatList(value)
	case "description", "message":
		return p.formatDescription(strValue)
	case "from", "to", "protocol", "type":
		return text.FgCyan.Sprint(strValue)
	default:
		if len(strValue) > 60 {
			return strValue[:57] + "..."
		}
		return strValue
	}
}

// formatStatus adds color coding to check results
func (p *Printer) formatStatus(status string) any {
	switch strings.ToLower(status) {
	case "ok":
		return text.FgGreen.Sprint("✅ " + status)
	case "error":
		return text.FgRed.Sprint("❌ " + status)
	case "warning":
		return text.FgYellow.Sprint("⚠️  " + status)
	default:
		return status
	}
}

// formatProvides renders a provides flag, or a list of provided protocols
func (p *Printer) formatProvides(value any) any {
	if v, ok := value.(bool); ok {
		if v {
			return text.FgGreen.Sprint("✅ yes")
		}
		return text.FgRed.Sprint("❌ no")
	}
	return p.formatList(value)
}

// formatList shows the first entries of a list and a count of the rest
func (p *Printer) formatList(value any) any {
	items, ok := value.([]any)
	if !ok {
		return fmt.Sprintf("%v", value)
	}
	if len(items) == 0 {
		return text.FgHiBlack.Sprint("none")
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, fmt.Sprintf("%v", item))
	}
	if len(names) <= 3 {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(names[:3], ", "), len(names)-3)
}

// formatDescription truncates long descriptions appropriately
func (p *Printer) formatDescription(desc string) any {
	if len(desc) <= 70 {
		return desc
	}
	return desc[:65] + text.FgHiBlack.Sprint("...")
}

// formatKeyValueTable formats an object as key-value pairs
func (p *Printer) formatKeyValueTable(data map[string]any) error {
	t := table.NewWriter()
	t.SetOutputMirror(p.options.Out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("PROPERTY"),
		text.FgHiCyan.Sprint("VALUE"),
	})

	var keys []string
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		t.AppendRow(table.Row{
			text.FgYellow.Sprint(key),
			p.formatCellValue(key, data[key]),
		})
	}

	t.Render()
	return nil
}

// formatSimpleList formats an array of simple values
func (p *Printer) formatSimpleList(data []any) error {
	for _, item := range data {
		if _, err := fmt.Fprintln(p.options.Out, item); err != nil {
			return err
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
