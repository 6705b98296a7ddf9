package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"strconv"

	"github.com/rotisserie/eris"
)

var (
	ErrNotStruct     = eris.New("component must be a struct type")
	ErrGeneric       = eris.New("generic components are not supported")
	ErrEmbedded      = eris.New("embedded fields are not supported")
	ErrNoFields      = eris.New("component has no fields")
	ErrBlankField    = eris.New("blank field names are not supported")
	ErrDuplicateName = eris.New("duplicate component name")
)

// Parse reads the components declared in one Go source file. src follows
// the rules of parser.ParseFile: nil means read filename from disk.
func Parse(filename string, src any) (*File, error) {
	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to parse %s", filename)
	}

	file := &File{
		Package: astFile.Name.Name,
		Source:  path.Base(filename),
	}
	imports := importsByName(astFile)
	used := make(map[string]bool)
	seen := make(map[string]bool)

	for _, decl := range astFile.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			groups := []*ast.CommentGroup{typeSpec.Doc}
			if len(genDecl.Specs) == 1 {
				groups = append(groups, genDecl.Doc)
			}
			if !hasDirective(groups...) {
				continue
			}
			pos := fset.Position(typeSpec.Pos())
			component, err := parseComponent(typeSpec, used)
			if err != nil {
				return nil, eris.Wrapf(err, "%s: %s", pos, typeSpec.Name.Name)
			}
			if seen[component.Name] {
				return nil, eris.Wrapf(ErrDuplicateName, "%s: %s", pos, component.Name)
			}
			seen[component.Name] = true
			file.Components = append(file.Components, component)
		}
	}

	for _, imp := range astFile.Imports {
		name := importName(imp)
		if used[name] {
			file.Imports = append(file.Imports, imports[name])
		}
	}
	return file, nil
}

func parseComponent(typeSpec *ast.TypeSpec, used map[string]bool) (Component, error) {
	if typeSpec.TypeParams != nil && len(typeSpec.TypeParams.List) > 0 {
		return Component{}, ErrGeneric
	}
	structType, ok := typeSpec.Type.(*ast.StructType)
	if !ok {
		return Component{}, ErrNotStruct
	}

	component := Component{Name: typeSpec.Name.Name}
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return Component{}, eris.Wrap(ErrEmbedded, types.ExprString(field.Type))
		}
		markPackages(field.Type, used)
		typ := types.ExprString(field.Type)
		for _, name := range field.Names {
			if name.Name == "_" {
				return Component{}, ErrBlankField
			}
			component.Fields = append(component.Fields, Field{Name: name.Name, Type: typ})
		}
	}
	if len(component.Fields) == 0 {
		return Component{}, ErrNoFields
	}
	return component, nil
}

// markPackages records package qualifiers referenced by a field type.
func markPackages(expr ast.Expr, used map[string]bool) {
	ast.Inspect(expr, func(node ast.Node) bool {
		sel, ok := node.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if ident, ok := sel.X.(*ast.Ident); ok {
			used[ident.Name] = true
		}
		return false
	})
}

func importsByName(astFile *ast.File) map[string]Import {
	imports := make(map[string]Import, len(astFile.Imports))
	for _, imp := range astFile.Imports {
		importPath, _ := strconv.Unquote(imp.Path.Value)
		alias := ""
		if imp.Name != nil {
			alias = imp.Name.Name
		}
		imports[importName(imp)] = Import{Name: alias, Path: importPath}
	}
	return imports
}

func importName(imp *ast.ImportSpec) string {
	if imp.Name != nil {
		return imp.Name.Name
	}
	importPath, _ := strconv.Unquote(imp.Path.Value)
	return path.Base(importPath)
}
