package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/sales-analyzer/pkg/adapters"
	"github.com/de-tools/sales-analyzer/pkg/models/domain"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var formats = []Format{FormatTable, FormatText, FormatJSON, FormatYAML}

func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q, expected one of %v", s, formats)
}

type TableConfig struct {
	NameWidth        int
	ValueWidth       int
	UnitWidth        int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        28,
		ValueWidth:       16,
		UnitWidth:        6,
		DescriptionWidth: 86,
	}
}

type Reporter struct {
	writer  io.Writer
	format  Format
	config  TableConfig
	handled int
}

func NewReporter(writer io.Writer, format Format) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if format == "" {
		format = FormatTable
	}
	return &Reporter{
		writer: writer,
		format: format,
		config: DefaultTableConfig(),
	}
}

// Handle renders one analysis. Successive calls on the same reporter produce a stream:
// separate YAML documents, one JSON value per line.
func (c *Reporter) Handle(analysis *domain.Analysis) error {
	defer func() { c.handled++ }()

	switch c.format {
	case FormatJSON:
		return c.handleJSON(analysis)
	case FormatYAML:
		return c.handleYAML(analysis)
	case FormatText:
		return c.handleText(adapters.MapAnalysisToReport(analysis))
	default:
		return c.handleTable(adapters.MapAnalysisToReport(analysis))
	}
}

func (c *Reporter) handleJSON(analysis *domain.Analysis) error {
	if err := json.NewEncoder(c.writer).Encode(adapters.MapAnalysisToAPI(analysis)); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func (c *Reporter) handleYAML(analysis *domain.Analysis) error {
	if c.handled > 0 {
		if _, err := io.WriteString(c.writer, "---\n"); err != nil {
			return err
		}
	}

	enc := yaml.NewEncoder(c.writer)
	enc.SetIndent(2)
	if err := enc.Encode(adapters.MapAnalysisToAPI(analysis)); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func (c *Reporter) handleTable(report domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value interface{}, unit string, desc string) string {
			unitStr := unit
			if unit == "" {
				unitStr = strings.Repeat(" ", c.config.UnitWidth)
			}
			return fmt.Sprintf("| %-*s | %-*v | %-*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value,
				c.config.UnitWidth, unitStr,
				c.config.DescriptionWidth, desc)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
	}

	tmpl := `
{{.Title}} ({{.Mode}})
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{if .Details}}
{{separator}}
{{formatRow "Name" "Value" "Unit" "Description"}}
{{separator}}
{{range .Details}}{{formatRow .Name .Value .Unit .Description}}
{{end}}{{separator}}
{{end}}{{end}}{{if .Notes}}
Notes:
{{range .Notes}}- {{.}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
