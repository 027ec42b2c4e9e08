package main

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/danverbraganza/varcaser/varcaser"
	"github.com/grsmv/inflect"
)

var (
	lsucck = varcaser.Caser{From: varcaser.LowerSnakeCase, To: varcaser.UpperCamelCaseKeepCaps}
	lslcc  = varcaser.Caser{From: varcaser.LowerSnakeCase, To: varcaser.LowerCamelCase}
)

// commonInitialisms are rendered fully upper case in Go identifiers.
var commonInitialisms = map[string]bool{
	"api":  true,
	"db":   true,
	"html": true,
	"http": true,
	"id":   true,
	"ip":   true,
	"json": true,
	"jwt":  true,
	"sql":  true,
	"ui":   true,
	"url":  true,
	"uuid": true,
}

// splitWords breaks an identifier into its words. Underscores, dashes and
// spaces separate words, as do lower-to-upper transitions and the end of a
// run of capitals ("FNNAPIUser" becomes "FNNAPI", "User").
func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	rs := []rune(s)
	for i, r := range rs {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			continue
		}

		if i > 0 && len(cur) > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}

		cur = append(cur, r)
	}

	flush()

	return words
}

func lowerWords(s string) []string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// snakeCase renders s as lower_snake_case; it is the storage-column and
// file-name form of a model or field name.
func snakeCase(s string) string {
	return strings.Join(lowerWords(s), "_")
}

// goName renders s as an exported Go identifier with common initialisms
// upper cased. goName(s) == goName(snakeCase(s)) for every s.
func goName(s string) string {
	words := lowerWords(s)
	if len(words) == 0 {
		return ""
	}

	for i, w := range words {
		if commonInitialisms[w] {
			words[i] = strings.ToUpper(w)
		}
	}

	return sanitizeIdent(lsucck.String(strings.Join(words, "_")))
}

// lowerCamel renders s as lowerCamelCase.
func lowerCamel(s string) string {
	return sanitizeIdent(lslcc.String(snakeCase(s)))
}

// packageName renders s as a Go package name: lower case, no separators.
func packageName(s string) string {
	return sanitizeIdent(strings.Join(lowerWords(s), ""))
}

func pluralFor(s string) string {
	words := lowerWords(s)
	if len(words) == 0 {
		return s
	}

	words[len(words)-1] = inflect.Pluralize(words[len(words)-1])

	return strings.Join(words, "_")
}

func singularFor(s string) string {
	words := lowerWords(s)
	if len(words) == 0 {
		return s
	}

	words[len(words)-1] = inflect.Singularize(words[len(words)-1])

	return strings.Join(words, "_")
}

// sanitizeIdent drops every rune that cannot appear in a Go identifier and
// makes sure the result neither starts with a digit nor is a keyword.
func sanitizeIdent(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	out := b.String()
	if out == "" {
		return "_"
	}
	if unicode.IsDigit([]rune(out)[0]) {
		out = "_" + out
	}
	if token.IsKeyword(out) {
		out += "_"
	}

	return out
}

// commentText flattens free text so that it can sit on a single line
// comment in generated code.
func commentText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
