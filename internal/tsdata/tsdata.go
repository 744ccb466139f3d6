// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tsdata evaluates exported array literals of a TypeScript data
// module using a Tree-sitter syntax tree.
//
// Only literal data is understood: objects, arrays, strings, template
// strings without substitutions, numbers, booleans, null and undefined.
// Type assertions (as, satisfies) and parentheses are looked through.
// Anything else yields ErrUnsupported.
package tsdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"go.uber.org/zap"

	"github.com/pdiddy/seedsql/internal/extract"
	"github.com/pdiddy/seedsql/pkg/types"
)

var (
	// ErrArrayNotFound is returned when no exported const has the requested name.
	ErrArrayNotFound = errors.New("array not found")

	// ErrUnsupported is returned for expressions that are not literal data.
	ErrUnsupported = errors.New("unsupported expression")
)

// Decoder parses TypeScript sources. A Decoder is not safe for concurrent use.
type Decoder struct {
	parser *sitter.Parser
	logger *zap.Logger
}

// NewDecoder returns a Decoder that logs to logger. A nil logger discards logs.
func NewDecoder(logger *zap.Logger) *Decoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := sitter.NewParser()
	p.SetLanguage(typescript.GetLanguage())
	return &Decoder{parser: p, logger: logger}
}

// File is a parsed source. Close releases the syntax tree.
type File struct {
	src    []byte
	tree   *sitter.Tree
	decls  map[string]*sitter.Node
	logger *zap.Logger
}

// Parse builds the syntax tree of src and indexes its exported const
// declarations.
func (d *Decoder) Parse(ctx context.Context, src []byte) (*File, error) {
	tree, err := d.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing TypeScript: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		d.logger.Warn("source has syntax errors; results may be incomplete")
	}

	f := &File{
		src:    src,
		tree:   tree,
		decls:  make(map[string]*sitter.Node),
		logger: d.logger,
	}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "export_statement" {
			continue
		}
		decl := stmt.ChildByFieldName("declaration")
		if decl == nil || decl.Type() != "lexical_declaration" || decl.Child(0).Type() != "const" {
			continue
		}
		for j := 0; j < int(decl.NamedChildCount()); j++ {
			v := decl.NamedChild(j)
			if v.Type() != "variable_declarator" {
				continue
			}
			name, value := v.ChildByFieldName("name"), v.ChildByFieldName("value")
			if name == nil || value == nil {
				continue
			}
			f.decls[name.Content(src)] = value
		}
	}

	d.logger.Debug("parsed source",
		zap.Int("bytes", len(src)),
		zap.Strings("exports", f.Names()))
	return f, nil
}

// Close releases the syntax tree.
func (f *File) Close() {
	f.tree.Close()
}

// Names returns the exported const names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.decls))
	for n := range f.decls {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Array evaluates the exported const name, which must be an array literal.
func (f *File) Array(name string) ([]any, error) {
	node, ok := f.decls[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrArrayNotFound, name)
	}
	v, err := f.eval(node)
	if err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", name, err)
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is a %T, not an array", name, v)
	}
	f.logger.Debug("evaluated array", zap.String("name", name), zap.Int("elements", len(arr)))
	return arr, nil
}

// Services decodes the named array as service records.
func (f *File) Services(name string) ([]types.ServiceRecord, error) {
	return decodeArray[types.ServiceRecord](f, name)
}

// CaseStudies decodes the named array as case study records.
func (f *File) CaseStudies(name string) ([]types.CaseStudyRecord, error) {
	return decodeArray[types.CaseStudyRecord](f, name)
}

func decodeArray[T any](f *File, name string) ([]T, error) {
	values, err := f.Array(name)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", name, err)
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return out, nil
}

func (f *File) eval(n *sitter.Node) (any, error) {
	switch n.Type() {
	case "array":
		out := []any{}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			c := n.NamedChild(i)
			if c.Type() == "comment" {
				continue
			}
			v, err := f.eval(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case "object":
		out := map[string]any{}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			c := n.NamedChild(i)
			switch c.Type() {
			case "comment":
				continue
			case "pair":
				key, err := f.propertyKey(c.ChildByFieldName("key"))
				if err != nil {
					return nil, err
				}
				v, err := f.eval(c.ChildByFieldName("value"))
				if err != nil {
					return nil, fmt.Errorf("property %s: %w", key, err)
				}
				out[key] = v
			default:
				return nil, f.unsupported(c)
			}
		}
		return out, nil

	case "string":
		return extract.Unquote(n.Content(f.src))

	case "template_string":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if n.NamedChild(i).Type() == "template_substitution" {
				return nil, f.unsupported(n.NamedChild(i))
			}
		}
		s, err := extract.Unquote(n.Content(f.src))
		if err != nil {
			return nil, err
		}
		return strings.TrimSpace(s), nil

	case "number":
		return parseNumber(n.Content(f.src))

	case "unary_expression":
		op := n.ChildByFieldName("operator")
		arg := n.ChildByFieldName("argument")
		if op == nil || arg == nil || arg.Type() != "number" {
			return nil, f.unsupported(n)
		}
		v, err := parseNumber(arg.Content(f.src))
		if err != nil {
			return nil, err
		}
		switch op.Type() {
		case "-":
			return -v, nil
		case "+":
			return v, nil
		}
		return nil, f.unsupported(n)

	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null", "undefined":
		return nil, nil
	case "identifier":
		if n.Content(f.src) == "undefined" {
			return nil, nil
		}
		return nil, f.unsupported(n)

	case "as_expression", "satisfies_expression", "parenthesized_expression", "non_null_expression":
		if n.NamedChildCount() == 0 {
			return nil, f.unsupported(n)
		}
		return f.eval(n.NamedChild(0))
	}
	return nil, f.unsupported(n)
}

func (f *File) propertyKey(n *sitter.Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("%w: pair without key", ErrUnsupported)
	}
	switch n.Type() {
	case "property_identifier", "number":
		return n.Content(f.src), nil
	case "string":
		return extract.Unquote(n.Content(f.src))
	}
	return "", f.unsupported(n)
}

func (f *File) unsupported(n *sitter.Node) error {
	return fmt.Errorf("%w: %s at line %d", ErrUnsupported, n.Type(), n.StartPoint().Row+1)
}

func parseNumber(lit string) (float64, error) {
	lit = strings.ReplaceAll(lit, "_", "")
	if i, err := strconv.ParseInt(lit, 0, 64); err == nil {
		return float64(i), nil
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing number %q: %w", lit, err)
	}
	return v, nil
}
