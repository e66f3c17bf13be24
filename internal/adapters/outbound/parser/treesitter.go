package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/openkraft/readability/internal/domain/syntax"
)

// MaxTreeDepth bounds recursion when converting deeply nested trees.
const MaxTreeDepth = 1000

var (
	jsLang  *sitter.Language
	tsLang  *sitter.Language
	tsxLang *sitter.Language

	langOnce sync.Once
)

func initLanguages() {
	langOnce.Do(func() {
		jsLang = javascript.GetLanguage()
		tsLang = typescript.GetLanguage()
		tsxLang = tsx.GetLanguage()
	})
}

// LanguageFor picks the grammar from the file extension. Unknown extensions
// are parsed as TypeScript.
func LanguageFor(filename string) *sitter.Language {
	initLanguages()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tsx":
		return tsxLang
	case ".js", ".jsx", ".mjs", ".cjs":
		return jsLang
	default:
		return tsLang
	}
}

// TreeSitterParser implements domain.SourceParser with tree-sitter grammars.
type TreeSitterParser struct{}

func New() *TreeSitterParser {
	return &TreeSitterParser{}
}

// Parse parses source and converts it into a syntax tree. When the source
// contains syntax errors the converted (partial) tree is returned together
// with an error naming the first offending position.
func (p *TreeSitterParser) Parse(ctx context.Context, filename string, source []byte) (syntax.Node, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(LanguageFor(filename))

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	converted := convert(root, source, 0)

	if root.HasError() {
		if bad := firstErrorNode(root); bad != nil {
			pt := bad.StartPoint()
			return converted, fmt.Errorf("syntax error at line %d, column %d", pt.Row+1, pt.Column+1)
		}
		return converted, fmt.Errorf("syntax error")
	}

	return converted, nil
}

func convert(n *sitter.Node, source []byte, depth int) syntax.Node {
	meta := metaOf(n)
	if depth > MaxTreeDepth {
		return &syntax.Other{Meta: meta, Type: n.Type()}
	}

	switch n.Type() {
	case "program":
		return &syntax.Program{Meta: meta, Body: convertNamedChildren(n, source, depth)}

	case "call_expression":
		call := &syntax.CallExpr{Meta: meta}
		if fn := n.ChildByFieldName("function"); fn != nil {
			call.Callee = convert(fn, source, depth+1)
		}
		if args := n.ChildByFieldName("arguments"); args != nil {
			if args.Type() == "arguments" {
				call.Args = convertNamedChildren(args, source, depth+1)
			} else {
				// Tagged template: the template is the only argument.
				call.Args = []syntax.Node{convert(args, source, depth+1)}
			}
		}
		return call

	case "identifier", "property_identifier", "private_property_identifier", "shorthand_property_identifier":
		return &syntax.Ident{Meta: meta, Name: nodeText(n, source)}

	case "member_expression":
		member := &syntax.MemberExpr{Meta: meta}
		if obj := n.ChildByFieldName("object"); obj != nil {
			member.Object = convert(obj, source, depth+1)
		}
		if prop := n.ChildByFieldName("property"); prop != nil {
			if id, ok := convert(prop, source, depth+1).(*syntax.Ident); ok {
				member.Property = id
			}
		}
		return member

	case "subscript_expression":
		member := &syntax.MemberExpr{Meta: meta}
		if obj := n.ChildByFieldName("object"); obj != nil {
			member.Object = convert(obj, source, depth+1)
		}
		if idx := n.ChildByFieldName("index"); idx != nil {
			member.Computed = convert(idx, source, depth+1)
		}
		return member

	case "string":
		raw := nodeText(n, source)
		return &syntax.StringLit{Meta: meta, Raw: raw, Value: stringValue(n, source)}

	case "template_string":
		raw := nodeText(n, source)
		tpl := &syntax.TemplateLit{Meta: meta, Raw: raw}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == "template_substitution" {
				tpl.HasSubstitutions = true
				tpl.Parts = append(tpl.Parts, convert(child, source, depth+1))
			}
		}
		if !tpl.HasSubstitutions {
			tpl.Value = templateValue(raw)
		}
		return tpl

	case "number":
		return &syntax.NumberLit{Meta: meta, Raw: nodeText(n, source)}

	case "arrow_function", "function_expression", "function", "generator_function":
		fn := &syntax.FuncExpr{Meta: meta, Arrow: n.Type() == "arrow_function"}
		if params := n.ChildByFieldName("parameters"); params != nil {
			fn.Params = convertNamedChildren(params, source, depth+1)
		} else if param := n.ChildByFieldName("parameter"); param != nil {
			fn.Params = []syntax.Node{convert(param, source, depth+1)}
		}
		if body := n.ChildByFieldName("body"); body != nil {
			fn.Body = convert(body, source, depth+1)
		}
		return fn

	default:
		return &syntax.Other{Meta: meta, Type: n.Type(), Children: convertNamedChildren(n, source, depth)}
	}
}

func convertNamedChildren(n *sitter.Node, source []byte, depth int) []syntax.Node {
	count := int(n.NamedChildCount())
	if count == 0 {
		return nil
	}
	out := make([]syntax.Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, convert(n.NamedChild(i), source, depth+1))
	}
	return out
}

func metaOf(n *sitter.Node) syntax.Meta {
	return syntax.Meta{
		Loc: &syntax.Location{
			StartLine: int(n.StartPoint().Row) + 1,
			EndLine:   int(n.EndPoint().Row) + 1,
		},
		Range: &syntax.Range{
			Start: int(n.StartByte()),
			End:   int(n.EndByte()),
		},
	}
}

// firstErrorNode returns the first ERROR or MISSING node in source order.
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstErrorNode(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

// nodeText returns the source text of n, or "" when its range lies outside
// source.
func nodeText(n *sitter.Node, source []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if start > end || end > uint32(len(source)) {
		return ""
	}
	return string(source[start:end])
}
