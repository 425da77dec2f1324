// Package title builds process titles from a configured token recipe.
package title

import (
	"strings"

	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/parser"
)

// Token names with a special meaning in a recipe.
const (
	TokenFirst  = "first"
	TokenSecond = "second"
)

// Generator joins resolved tokens into a process title.
type Generator struct {
	// Separator is placed between non-empty tokens.
	Separator string
	// LengthLimit caps the title length in runes; 0 disables the limit.
	LengthLimit int
}

// Generate resolves every token of recipe against the record snapshot.
// Tokens in single quotes are literals, "first" and "second" select the
// first and second non-blank cell, anything else names a column. Empty
// tokens are skipped. Characters that are not allowed in file names are
// replaced by "_" and the joined title is cut to LengthLimit runes, keeping
// the head.
func (g Generator) Generate(recipe []string, snap models.Snapshot) string {
	parts := make([]string, 0, len(recipe))
	for _, token := range recipe {
		if v := Resolve(token, snap); v != "" {
			parts = append(parts, v)
		}
	}
	return Truncate(sanitize(strings.Join(parts, g.Separator)), g.LengthLimit)
}

// Resolve returns the value of a single recipe token.
func Resolve(token string, snap models.Snapshot) string {
	switch {
	case isLiteral(token):
		return token[1 : len(token)-1]
	case token == TokenFirst:
		return strings.TrimSpace(snap.Row.First)
	case token == TokenSecond:
		return strings.TrimSpace(snap.Row.Second)
	default:
		return strings.TrimSpace(parser.ColumnValue(snap.Row, snap.Header, token))
	}
}

// ColumnRefs returns the recipe tokens that reference spreadsheet columns.
func ColumnRefs(recipe []string) []string {
	var refs []string
	for _, token := range recipe {
		if token != "" && token != TokenFirst && token != TokenSecond && !isLiteral(token) {
			refs = append(refs, token)
		}
	}
	return refs
}

func isLiteral(token string) bool {
	return len(token) >= 2 && strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'")
}

// Truncate keeps the first limit runes of s. A limit of 0 or less keeps s.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

var unsafeChars = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_", "\n", "_", "\t", "_",
)

func sanitize(s string) string {
	return unsafeChars.Replace(s)
}
