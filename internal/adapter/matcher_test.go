package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMatcher_Match(t *testing.T) {
	matcher, err := NewFileMatcher([]string{"*.ts"}, []string{"*.d.ts", "generated/**"})
	require.NoError(t, err)

	tests := []struct {
		rel  string
		want bool
	}{
		{"index.ts", true},
		{"core/entities/user.entity.ts", true},
		{"core/global.d.ts", false},
		{"generated/api.ts", false},
		{"generated/deep/api.ts", false},
		{"README.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Match(tt.rel))
		})
	}
}

func TestFileMatcher_EmptyIncludeAcceptsAll(t *testing.T) {
	matcher, err := NewFileMatcher(nil, nil)
	require.NoError(t, err)

	assert.True(t, matcher.Match("anything/at/all.txt"))
}

func TestFileMatcher_InvalidPattern(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		want    string
	}{
		{"unclosed class in include", []string{"[unterminated"}, nil, "unclosed '['"},
		{"unclosed brace in exclude", nil, []string{"{a,b"}, "unclosed '{'"},
		{"unclosed brace in include", []string{"*.{ts,tsx"}, nil, "unclosed '{'"},
		{"unclosed class in exclude", nil, []string{"gen[0-9/**"}, "unclosed '['"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileMatcher(tt.include, tt.exclude)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestFileMatcher_ClosedGroups(t *testing.T) {
	matcher, err := NewFileMatcher([]string{"*.{dto,entity}.ts"}, []string{"v[12]/**", `\{raw\}.ts`})
	require.NoError(t, err)

	assert.True(t, matcher.Match("user.dto.ts"))
	assert.True(t, matcher.Match("user.entity.ts"))
	assert.False(t, matcher.Match("user.types.ts"))
	assert.False(t, matcher.Match("v1/user.dto.ts"))
	assert.True(t, matcher.Match("v3/user.dto.ts"))
}
