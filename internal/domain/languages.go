package domain

import (
	"path/filepath"
	"strings"
)

// Language identifies a source language the gate can syntax-check.
type Language string

const (
	LangGo         Language = "go"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangBash       Language = "bash"
	LangUnknown    Language = ""
)

// DetectLanguage maps a file path to its language by extension.
// Returns LangUnknown for anything the gate cannot check.
func DetectLanguage(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return LangGo
	case ".js", ".jsx", ".mjs", ".cjs":
		return LangJavaScript
	case ".ts", ".tsx", ".mts", ".cts":
		return LangTypeScript
	case ".py", ".pyi":
		return LangPython
	case ".rs":
		return LangRust
	case ".sh", ".bash":
		return LangBash
	default:
		return LangUnknown
	}
}

// Checkable reports whether the gate has a parser for the given path.
func Checkable(path string) bool {
	return DetectLanguage(path) != LangUnknown
}
