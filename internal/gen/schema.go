// Package gen turns struct declarations marked //ecs:component into
// per-field component managers.
package gen

import (
	"go/ast"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Directive marks a struct as a component schema.
const Directive = "//ecs:component"

// File is one parsed source file.
type File struct {
	Package    string
	Source     string
	Imports    []Import
	Components []Component
}

type Import struct {
	Name string
	Path string
}

// Component is the ordered field list of one schema.
type Component struct {
	Name   string
	Fields []Field
}

type Field struct {
	Name string
	Type string
}

// Prefix is the lower-cased component name used for unexported helpers.
func (c Component) Prefix() string {
	return lowerFirst(c.Name)
}

func (c Component) Exported() string {
	return upperFirst(c.Name)
}

func (f Field) Private() string {
	return "p" + upperFirst(f.Name)
}

func (f Field) Column() string {
	return upperFirst(f.Name)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// hasDirective reads the raw comments; CommentGroup.Text drops directives.
func hasDirective(groups ...*ast.CommentGroup) bool {
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, comment := range group.List {
			if strings.TrimSpace(comment.Text) == Directive {
				return true
			}
		}
	}
	return false
}
