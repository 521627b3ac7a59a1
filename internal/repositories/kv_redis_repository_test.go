package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, "quiz_result:abc:", escapeGlob("quiz_result:abc:"))
	assert.Equal(t, `quiz_result:a\*b\?\[c\]\\:`, escapeGlob(`quiz_result:a*b?[c]\:`))
}
