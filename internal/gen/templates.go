package gen

import "text/template"

// Template for the generated builder file.
//
// Setter methods use value receivers on purpose: a transition consumes the
// receiver copy and hands back a new state value, so stale intermediate
// builders never alias the result.
var builderTemplate = template.Must(template.New("builder").Parse(`// Code generated by builder-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}import (
{{range .Imports}}	"{{.}}"
{{end}})

{{end}}{{range .States}}{{if .Comment}}// {{.Comment}}
{{end}}type {{.TypeName}} struct {
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}}

{{end}}{{range .Constructors}}{{if .Comment}}// {{.Comment}}
{{end}}func {{.Name}}({{if .Param}}{{.Param.Name}} {{.Param.Type}}{{end}}) {{.ReturnType}} {
	return {{.ReturnType}}{
{{range .Assignments}}		{{.Field}}: {{.Expr}},
{{end}}	}
}

{{end}}{{range .Setters}}{{if .Comment}}// {{.Comment}}
{{end}}func (b {{.Receiver}}) {{.Name}}({{.Param.Name}} {{.Param.Type}}) {{.ReturnType}} {
	return {{.ReturnType}}{
{{range .Assignments}}		{{.Field}}: {{.Expr}},
{{end}}	}
}

{{end}}{{range .OptionalSetters}}{{if .Comment}}// {{.Comment}}
{{end}}func (b {{.Receiver}}) {{.Name}}({{.Param.Name}} {{.Param.Type}}) {{.ReturnType}} {
	b.{{.SelfField}} = {{.SelfExpr}}
	return b
}

{{end}}{{range .Builds}}{{if .Comment}}// {{.Comment}}
{{end}}func (b {{.Receiver}}) {{.Name}}() {{.ReturnType}} {
	return {{.ReturnType}}{
{{range .Assignments}}		{{.Field}}: {{.Expr}},
{{end}}	}
}

{{end}}`))
