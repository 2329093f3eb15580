package treesitter

import (
	"context"

	"github.com/maryamariyan/classify/pkg/classify"
	"github.com/maryamariyan/classify/pkg/span"
	"github.com/maryamariyan/classify/pkg/syntax"
)

// selfSpan classifies the unit's own significant span under one category.
// All the default registrations are instances of this: the grammar already
// split the text, so classification is a lookup.
func selfSpan(category span.Category) classify.Classifier {
	return classify.ClassifierFunc(func(_ context.Context, unit syntax.Unit, _ span.Span,
		_ *classify.SemanticContext, _ *classify.Options, sink *classify.Sink) error {
		sink.Add(unit.Span(), category)
		return nil
	})
}

// Anonymous tree-sitter leaves carry their literal text as the node type, so
// keyword tables are plain keyword lists.
var keywords = map[Language][]string{
	LangGo: {
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var",
	},
	LangPython: {
		"and", "as", "assert", "async", "await", "break", "class", "continue",
		"def", "del", "elif", "else", "except", "finally", "for", "from",
		"global", "if", "import", "in", "is", "lambda", "nonlocal", "not",
		"or", "pass", "raise", "return", "try", "while", "with", "yield",
	},
	LangJavaScript: {
		"async", "await", "break", "case", "catch", "class", "const",
		"continue", "debugger", "default", "delete", "do", "else", "export",
		"extends", "finally", "for", "function", "if", "import", "in",
		"instanceof", "let", "new", "of", "return", "static", "switch",
		"throw", "try", "typeof", "var", "void", "while", "with", "yield",
	},
	LangBash: {
		"if", "then", "else", "elif", "fi", "for", "while", "until", "do",
		"done", "case", "esac", "in", "function", "select", "time",
	},
}

var operators = []string{
	"+", "-", "*", "/", "%", "=", "==", "!=", "<", ">", "<=", ">=",
	"&&", "||", "!", "&", "|", "^", "<<", ">>", ":=", "=>", "->",
	"++", "--", "+=", "-=", "*=", "/=", "|=", "&=", "...", "?", "~",
}

var punctuation = []string{
	"(", ")", "{", "}", "[", "]", ",", ";", ".", ":",
}

// tokenCategories maps named leaf kinds to categories, per language.
var tokenCategories = map[Language]map[syntax.Kind]span.Category{
	LangGo: {
		"identifier":         span.CategoryIdentifier,
		"type_identifier":    span.CategoryType,
		"field_identifier":   span.CategoryVariable,
		"package_identifier": span.CategoryIdentifier,
		"label_name":         span.CategoryIdentifier,
		"int_literal":        span.CategoryNumber,
		"float_literal":      span.CategoryNumber,
		"imaginary_literal":  span.CategoryNumber,
		"escape_sequence":    span.CategoryString,
		"true":               span.CategoryKeyword,
		"false":              span.CategoryKeyword,
		"nil":                span.CategoryKeyword,
		"iota":               span.CategoryKeyword,
	},
	LangPython: {
		"identifier":     span.CategoryIdentifier,
		"integer":        span.CategoryNumber,
		"float":          span.CategoryNumber,
		"string_start":   span.CategoryString,
		"string_content": span.CategoryString,
		"string_end":     span.CategoryString,
		"true":           span.CategoryKeyword,
		"false":          span.CategoryKeyword,
		"none":           span.CategoryKeyword,
	},
	LangJavaScript: {
		"identifier":          span.CategoryIdentifier,
		"property_identifier": span.CategoryVariable,
		"number":              span.CategoryNumber,
		"string_fragment":     span.CategoryString,
		"regex_pattern":       span.CategoryString,
		"true":                span.CategoryKeyword,
		"false":               span.CategoryKeyword,
		"null":                span.CategoryKeyword,
		"undefined":           span.CategoryKeyword,
	},
	LangBash: {
		"variable_name":  span.CategoryVariable,
		"command_name":   span.CategoryFunction,
		"string_content": span.CategoryString,
		"number":         span.CategoryNumber,
	},
}

// nodeCategories maps interior node kinds whose whole span classifies as one
// category, e.g. literal nodes that the grammar splits into quote and
// content leaves.
var nodeCategories = map[Language]map[syntax.Kind]span.Category{
	LangGo: {
		"interpreted_string_literal": span.CategoryString,
		"raw_string_literal":         span.CategoryString,
		"rune_literal":               span.CategoryString,
	},
	LangPython: {
		"string": span.CategoryString,
	},
	LangJavaScript: {
		"string":          span.CategoryString,
		"template_string": span.CategoryString,
		"regex":           span.CategoryString,
	},
	LangBash: {
		"string":     span.CategoryString,
		"raw_string": span.CategoryString,
	},
}

// NewRegistry builds the default classifier registry for a language:
// keywords, identifiers, literals, operators, punctuation, and the comment
// token emitted by the converter's structured trivia.
func NewRegistry(lang Language) *classify.Registry {
	reg := classify.NewRegistry()

	for _, kw := range keywords[lang] {
		reg.Token(syntax.Kind(kw), selfSpan(span.CategoryKeyword))
	}
	for _, op := range operators {
		reg.Token(syntax.Kind(op), selfSpan(span.CategoryOperator))
	}
	for _, p := range punctuation {
		reg.Token(syntax.Kind(p), selfSpan(span.CategoryPunctuation))
	}
	for kind, category := range tokenCategories[lang] {
		reg.Token(kind, selfSpan(category))
	}
	for kind, category := range nodeCategories[lang] {
		reg.Node(kind, selfSpan(category))
	}
	reg.Token(KindComment, selfSpan(span.CategoryComment))

	return reg
}
