package idgen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteCodeGenerator(t *testing.T) {
	gen := NewInviteCodeGenerator(8)
	pattern := regexp.MustCompile(`^[0-9a-f]{8}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}
