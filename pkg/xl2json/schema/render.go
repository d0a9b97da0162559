package schema

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
)

// DefaultPackage is used when Render is given no package name.
const DefaultPackage = "models"

type templateData struct {
	Package   string
	Name      string
	Fields    []fieldData
	NeedsTime bool
}

type fieldData struct {
	GoName string
	GoType string
	Tag    string
}

var modelTemplate = template.Must(template.New("model").Parse(`// Code generated by xl2json. DO NOT EDIT.

package {{.Package}}

import (
	"encoding/json"
{{- if .NeedsTime}}
	"time"
{{- end}}
)

// {{.Name}} is one record of the source sheet.
type {{.Name}} struct {
{{- range .Fields}}
	{{.GoName}} {{.GoType}} {{.Tag}}
{{- end}}
}

// Unmarshal{{.Name}} decodes a JSON array of {{.Name}} records.
func Unmarshal{{.Name}}(data []byte) ([]{{.Name}}, error) {
	var records []{{.Name}}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ToJSON encodes the record.
func (m {{.Name}}) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
`))

// Render writes the model as a formatted Go source file in package pkg.
func Render(m *models.SchemaModel, pkg string) (string, error) {
	if m == nil {
		return "", fmt.Errorf("%w: no model", models.ErrInvalidSample)
	}
	if pkg == "" {
		pkg = DefaultPackage
	}

	data := templateData{Package: pkg, Name: identifier(m.Name, "Model")}
	for _, f := range m.Fields {
		if !taggable(f.Key) {
			return "", fmt.Errorf("%w: key %q cannot be named in a struct tag", models.ErrInvalidSample, f.Key)
		}
		if f.Type == models.TypeDateTime {
			data.NeedsTime = true
		}
		data.Fields = append(data.Fields, fieldData{
			GoName: f.GoName,
			GoType: goType(f.Type),
			Tag:    jsonTag(f.Key),
		})
	}

	var buf bytes.Buffer
	if err := modelTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("formatting code: %w", err)
	}
	return string(formatted), nil
}

// Generate infers the model of sample and renders it. A blank sample gives
// an empty result.
func Generate(sample, modelName, pkg string) (string, error) {
	m, err := Infer(sample, modelName)
	if err != nil || m == nil {
		return "", err
	}
	return Render(m, pkg)
}

func goType(t models.FieldType) string {
	switch t {
	case models.TypeString:
		return "string"
	case models.TypeInteger:
		return "int64"
	case models.TypeNumber:
		return "float64"
	case models.TypeBoolean:
		return "bool"
	case models.TypeDateTime:
		return "time.Time"
	case models.TypeObject:
		return "map[string]any"
	case models.TypeArray:
		return "[]any"
	default:
		return "any"
	}
}

// jsonTag renders the struct tag of a taggable key.
func jsonTag(key string) string {
	return "`json:\"" + key + "\"`"
}
