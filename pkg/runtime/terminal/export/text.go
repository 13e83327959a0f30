package export

import (
	"fmt"
	"text/template"

	"github.com/de-tools/sales-analyzer/pkg/models/domain"
)

const textTemplate = `
{{.Title}} ({{.Mode}})
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{range .Details}}- {{.Name}}: {{.Value}}{{if .Unit}} {{.Unit}}{{end}}
  {{.Description}}
{{end}}{{end}}{{range .Notes}}
! {{.}}{{end}}
`

func (c *Reporter) handleText(report domain.Report) error {
	t, err := template.New("report").Parse(textTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
