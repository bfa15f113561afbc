package syntax

import (
	"context"
	"fmt"
	goparser "go/parser"
	"go/token"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/i230016arsaltemuri/lintgate/internal/domain"
)

// maxReportedErrors caps the diagnostics packed into one error message.
const maxReportedErrors = 5

// Checker implements domain.SyntaxChecker. Go files go through the native
// go/parser front-end; everything else is parsed with tree-sitter in
// check-only mode, so top-level side effects are never executed.
type Checker struct{}

func New() *Checker {
	return &Checker{}
}

// CheckFile parses path and returns nil when it is syntactically valid.
func (c *Checker) CheckFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lang := domain.DetectLanguage(path)
	switch lang {
	case domain.LangGo:
		return checkGo(path, data)
	case domain.LangUnknown:
		return fmt.Errorf("unsupported file type %q", path)
	default:
		return checkTreeSitter(lang, data)
	}
}

func checkGo(path string, data []byte) error {
	fset := token.NewFileSet()
	if _, err := goparser.ParseFile(fset, path, data, goparser.AllErrors); err != nil {
		return err
	}
	return nil
}

func grammarFor(lang domain.Language) *sitter.Language {
	switch lang {
	case domain.LangJavaScript:
		return javascript.GetLanguage()
	case domain.LangTypeScript:
		return typescript.GetLanguage()
	case domain.LangPython:
		return python.GetLanguage()
	case domain.LangRust:
		return rust.GetLanguage()
	case domain.LangBash:
		return bash.GetLanguage()
	default:
		return nil
	}
}

func checkTreeSitter(lang domain.Language, data []byte) error {
	grammar := grammarFor(lang)
	if grammar == nil {
		return fmt.Errorf("no grammar for language %q", lang)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(context.Background(), nil, data)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	diags := collectErrors(tree.RootNode(), data)
	if len(diags) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d syntax error(s)", len(diags))
	for i, d := range diags {
		if i >= maxReportedErrors {
			fmt.Fprintf(&b, "; and %d more", len(diags)-maxReportedErrors)
			break
		}
		b.WriteString("; ")
		b.WriteString(d)
	}
	return fmt.Errorf("%s", b.String())
}

// collectErrors walks the parse tree and describes every ERROR or MISSING
// node with its line and column.
func collectErrors(root *sitter.Node, data []byte) []string {
	var diags []string
	var walk func(n *sitter.Node, depth int)
	walk = func(n *sitter.Node, depth int) {
		// guard against pathological nesting in malformed input
		if depth > 1000 || len(diags) >= 50 {
			return
		}

		if n.IsError() || n.IsMissing() {
			pt := n.StartPoint()
			diags = append(diags, describeNode(n, data, int(pt.Row)+1, int(pt.Column)+1))
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i), depth+1)
		}
	}
	walk(root, 0)
	return diags
}

func describeNode(n *sitter.Node, data []byte, line, col int) string {
	if n.IsMissing() {
		return fmt.Sprintf("line %d:%d: missing %q", line, col, n.Type())
	}

	start, end := n.StartByte(), n.EndByte()
	if end > uint32(len(data)) {
		end = uint32(len(data))
	}
	snippet := ""
	if end > start && end-start <= 40 {
		snippet = strings.TrimSpace(string(data[start:end]))
	}
	if snippet != "" {
		return fmt.Sprintf("line %d:%d: unexpected %q", line, col, snippet)
	}
	return fmt.Sprintf("line %d:%d: syntax error", line, col)
}
