// Package treesitter parses real source files with tree-sitter grammars into
// the syntax trees the classification engine walks, and builds the default
// classifier registries for the supported languages.
package treesitter

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/maryamariyan/classify/pkg/syntax"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"gitlab.com/tozd/go/errors"
)

// Language identifies a supported grammar.
type Language string

const (
	LangGo         Language = "go"
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangBash       Language = "bash"
)

var extLanguages = map[string]Language{
	".go":   LangGo,
	".py":   LangPython,
	".js":   LangJavaScript,
	".jsx":  LangJavaScript,
	".mjs":  LangJavaScript,
	".cjs":  LangJavaScript,
	".sh":   LangBash,
	".bash": LangBash,
	".zsh":  LangBash,
}

// DetectLanguage maps a file path to a supported language by extension.
func DetectLanguage(path string) (Language, bool) {
	lang, ok := extLanguages[filepath.Ext(path)]
	return lang, ok
}

type parserCache struct {
	mu      sync.Mutex
	parsers map[Language]*sitter.Parser
}

var cache = parserCache{parsers: make(map[Language]*sitter.Parser)}

func (c *parserCache) get(lang Language) (*sitter.Parser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.parsers[lang]; ok {
		return p, nil
	}

	var grammar *sitter.Language
	switch lang {
	case LangGo:
		grammar = golang.GetLanguage()
	case LangPython:
		grammar = python.GetLanguage()
	case LangJavaScript:
		grammar = javascript.GetLanguage()
	case LangBash:
		grammar = bash.GetLanguage()
	default:
		return nil, errors.Errorf("unsupported language: %s", lang)
	}

	p := sitter.NewParser()
	p.SetLanguage(grammar)
	c.parsers[lang] = p
	return p, nil
}

// Parse parses content into a classification-ready syntax tree. Comments
// become structured trivia attached to the following token (or to the
// synthetic end-of-file token when nothing follows), so that a requested
// range landing inside a comment still classifies it.
func Parse(ctx context.Context, content []byte, lang Language) (syntax.Unit, error) {
	parser, err := cache.get(lang)
	if err != nil {
		return nil, err
	}

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, errors.Errorf("parsing %s source: %w", lang, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, errors.New("parser produced no tree")
	}

	return convertFile(root, len(content)), nil
}
