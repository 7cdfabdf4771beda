package adapter

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// FileMatcher selects files by base-name include patterns and path exclude
// patterns. An empty include list accepts every file.
type FileMatcher struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewFileMatcher compiles include and exclude glob patterns.
// Include patterns are matched against the file's base name (e.g. "*.dto.ts").
// Exclude patterns are matched against both the slash-separated relative path
// and the base name (e.g. "legacy/**", "*.d.ts").
func NewFileMatcher(include, exclude []string) (*FileMatcher, error) {
	matcher := &FileMatcher{}

	for _, p := range include {
		if err := checkClosed(p); err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", p, err)
		}

		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", p, err)
		}

		matcher.include = append(matcher.include, g)
	}

	for _, p := range exclude {
		if err := checkClosed(p); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		matcher.exclude = append(matcher.exclude, g)
	}

	return matcher, nil
}

// checkClosed rejects patterns with an unclosed '{' or '['. glob.Compile
// accepts "{a,b" as if it were "{a,b}".
func checkClosed(pattern string) error {
	braces, inClass := 0, false

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '{':
			braces++
		case c == '}' && braces > 0:
			braces--
		}
	}

	if inClass {
		return fmt.Errorf("unclosed '['")
	}

	if braces > 0 {
		return fmt.Errorf("unclosed '{'")
	}

	return nil
}

// Match reports whether the file at rel (relative to the scan root) is selected.
func (fm *FileMatcher) Match(rel string) bool {
	slashed := filepath.ToSlash(rel)
	base := filepath.Base(rel)

	for _, g := range fm.exclude {
		if g.Match(slashed) || g.Match(base) {
			return false
		}
	}

	if len(fm.include) == 0 {
		return true
	}

	for _, g := range fm.include {
		if g.Match(base) {
			return true
		}
	}

	return false
}
