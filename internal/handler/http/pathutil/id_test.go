package pathutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	valid := []string{"64f0c2a1b2c3d4e5f6a7b8c9", "abc", "a-b_c", "123"}
	for _, id := range valid {
		assert.NoError(t, ValidateID(id), id)
	}

	invalid := []string{"", "a/b", "a b", "../x", "id?x=1", strings.Repeat("a", maxIDLength+1), "ïd"}
	for _, id := range invalid {
		assert.ErrorIs(t, ValidateID(id), ErrInvalidID, id)
	}
}
