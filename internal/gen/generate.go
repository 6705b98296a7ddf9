package gen

import (
	"bytes"
	"go/format"
	"text/template"

	"github.com/rotisserie/eris"
)

const header = "// Code generated by ecsgen. DO NOT EDIT."

var fileTemplate = template.Must(template.New("file").Parse(`{{.Header}}
// source: {{.File.Source}}

package {{.File.Package}}

import (
	"iter"

	"github.com/TheBitDrifter/ecs"
	"github.com/TheBitDrifter/table"
{{- range .File.Imports}}
	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{- end}}
)
{{range .File.Components}}{{template "component" .}}{{end}}`))

var _ = template.Must(fileTemplate.New("component").Parse(`{{$c := .}}{{$p := .Prefix}}
var _ ecs.ComponentManager[{{.Name}}, {{.Name}}View, {{.Name}}Mut] = (*{{.Name}}Manager)(nil)

{{range .Fields}}type {{$p}}{{.Column}}Column struct{ v {{.Type}} }
{{end}}
var (
{{- range .Fields}}
	{{$p}}{{.Column}}Field = ecs.FactoryNewField[{{$p}}{{.Column}}Column]()
{{- end}}
)

// {{.Name}}View is a read-only view of one stored {{.Name}}.
type {{.Name}}View struct {
{{- range .Fields}}
	{{.Private}} *{{.Type}}
{{- end}}
}

func new{{.Exported}}View({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Private}} *{{$f.Type}}{{end}}) {{.Name}}View {
	return {{.Name}}View{
{{- range .Fields}}
		{{.Private}}: {{.Private}},
{{- end}}
	}
}
{{range .Fields}}
func (v {{$c.Name}}View) {{.Name}}() {{.Type}} {
	return *v.{{.Private}}
}
{{end}}
// {{.Name}}Mut points into the storage of one {{.Name}}.
type {{.Name}}Mut struct {
{{- range .Fields}}
	{{.Name}} *{{.Type}}
{{- end}}
}

func new{{.Exported}}Mut({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Private}} *{{$f.Type}}{{end}}) {{.Name}}Mut {
	return {{.Name}}Mut{
{{- range .Fields}}
		{{.Name}}: {{.Private}},
{{- end}}
	}
}

// {{.Name}}Manager keeps each field of {{.Name}} in its own column.
type {{.Name}}Manager struct {
	store *ecs.Store
}

func New{{.Exported}}Manager() (*{{.Name}}Manager, error) {
	store, err := ecs.Factory.NewStore("{{.Name}}",
{{- range .Fields}}
		{{$p}}{{.Column}}Field.Column(),
{{- end}}
	)
	if err != nil {
		return nil, err
	}
	return &{{.Name}}Manager{store: store}, nil
}

func (m *{{.Name}}Manager) Name() string {
	return m.store.Name()
}

func (m *{{.Name}}Manager) Store() *ecs.Store {
	return m.store
}

func (m *{{.Name}}Manager) Add(key ecs.Keyed, data *{{.Name}}) {
	var c {{.Name}}
	if data != nil {
		c = *data
	}
	m.store.Put(key.ID(), func(row int, tbl table.Table) {
{{- range .Fields}}
		{{$p}}{{.Column}}Field.At(row, tbl).v = c.{{.Name}}
{{- end}}
	})
}

func (m *{{.Name}}Manager) Remove(id ecs.ID) {
	m.store.Delete(id)
}

func (m *{{.Name}}Manager) Clear() error {
	return m.store.Reset()
}

func (m *{{.Name}}Manager) Contains(id ecs.ID) bool {
	return m.store.Contains(id)
}

func (m *{{.Name}}Manager) Len() int {
	return m.store.Len()
}

func (m *{{.Name}}Manager) Get(id ecs.ID) ({{.Name}}View, bool) {
	row, ok := m.store.Row(id)
	if !ok {
		return {{.Name}}View{}, false
	}
	return m.view(row), true
}

func (m *{{.Name}}Manager) GetMut(id ecs.ID) ({{.Name}}Mut, bool) {
	row, ok := m.store.Row(id)
	if !ok {
		return {{.Name}}Mut{}, false
	}
	return m.mut(row), true
}

func (m *{{.Name}}Manager) Iter() iter.Seq2[ecs.ID, {{.Name}}View] {
	return func(yield func(ecs.ID, {{.Name}}View) bool) {
		for id, row := range m.store.Rows() {
			if !yield(id, m.view(row)) {
				return
			}
		}
	}
}

func (m *{{.Name}}Manager) IterMut() iter.Seq2[ecs.ID, {{.Name}}Mut] {
	return func(yield func(ecs.ID, {{.Name}}Mut) bool) {
		for id, row := range m.store.RowsMut() {
			if !yield(id, m.mut(row)) {
				return
			}
		}
	}
}

func (m *{{.Name}}Manager) view(row int) {{.Name}}View {
	tbl := m.store.Table()
	return new{{.Exported}}View(
{{- range .Fields}}
		&{{$p}}{{.Column}}Field.At(row, tbl).v,
{{- end}}
	)
}

func (m *{{.Name}}Manager) mut(row int) {{.Name}}Mut {
	tbl := m.store.Table()
	return new{{.Exported}}Mut(
{{- range .Fields}}
		&{{$p}}{{.Column}}Field.At(row, tbl).v,
{{- end}}
	)
}
`))

// Generate renders the managers for every component in file, gofmt'd.
func Generate(file *File) ([]byte, error) {
	if len(file.Components) == 0 {
		return nil, eris.Errorf("%s: no %s structs found", file.Source, Directive)
	}
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Header string
		File   *File
	}{header, file})
	if err != nil {
		return nil, eris.Wrapf(err, "failed to render %s", file.Source)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, eris.Wrapf(err, "generated code for %s does not parse", file.Source)
	}
	return src, nil
}
