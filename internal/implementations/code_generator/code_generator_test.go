package codegenerator

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedCodeIsHexEncoded(t *testing.T) {
	generator := NewGenerator()
	c := generator.GenerateCode()
	assert.Len(t, c, 2*CODE_BYTE_LEN)
	_, err := hex.DecodeString(string(c))
	assert.Nil(t, err)
}

func TestGeneratedCodesAreUnique(t *testing.T) {
	generator := NewGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		c := string(generator.GenerateCode())
		_, ok := seen[c]
		assert.False(t, ok)
		seen[c] = struct{}{}
	}
}
