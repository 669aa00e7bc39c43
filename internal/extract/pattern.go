// Package extract pulls values out of distribution documents with
// single-group regular expressions.
package extract

import (
	"fmt"
	"regexp"

	"github.com/nuomi1/swscan/internal/models"
)

// Patterns used against distribution documents
const (
	// ModelPattern matches machine model identifiers such as MacBookPro10,1
	ModelPattern = `(\w+\d+,\d+)`

	// BuildPattern and VersionPattern match a <key>/<string> pair that may
	// be split across lines
	BuildPattern   = `<key>BUILD</key>\s*<string>(.*?)</string>`
	VersionPattern = `<key>VERSION</key>\s*<string>(.*?)</string>`

	// SystemPattern matches the installer's disabled group identifier
	SystemPattern = `suDisabledGroupID="([\w\s]+)"`
)

// Pattern is a compiled regular expression with exactly one capture group
type Pattern struct {
	re *regexp.Regexp
}

// Compile parses pattern and checks it has a single capture group
func Compile(pattern string) (*Pattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &models.SWScanError{
			Type: models.ErrPattern,
			Err:  fmt.Errorf("invalid pattern %q: %w", pattern, err),
		}
	}

	if n := re.NumSubexp(); n != 1 {
		return nil, &models.SWScanError{
			Type: models.ErrPattern,
			Err:  fmt.Errorf("pattern %q has %d capture groups, want 1", pattern, n),
		}
	}

	return &Pattern{re: re}, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source text of the pattern
func (p *Pattern) String() string {
	return p.re.String()
}

// FindAll returns the captured text of every non-overlapping match, left to
// right. The result is empty, not nil, when nothing matches.
func (p *Pattern) FindAll(text string) []string {
	matches := p.re.FindAllStringSubmatch(text, -1)
	captures := make([]string, 0, len(matches))
	for _, m := range matches {
		captures = append(captures, m[1])
	}
	return captures
}

// FindFirst returns the capture of the first match, or an ErrMissingMatch
// error when the pattern does not occur in text
func (p *Pattern) FindFirst(text string) (string, error) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return "", &models.SWScanError{
			Type: models.ErrMissingMatch,
			Err:  fmt.Errorf("no match for %q", p.re.String()),
		}
	}
	return m[1], nil
}

// FindAll compiles pattern and returns all of its captures in text
func FindAll(text, pattern string) ([]string, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.FindAll(text), nil
}
