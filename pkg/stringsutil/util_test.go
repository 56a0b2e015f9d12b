package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings([]string{"", "a", "", "b", ""}))
	assert.Nil(t, RemoveEmptyStrings([]string{"", ""}))
}

func TestTrimAll(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, TrimAll([]string{" a ", "b c\t"}))
}
