package proctitle

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "dracula-wtf", normalize("  dracula-wtf \n"))
	assert.Equal(t, "dracula-wtf-ser", normalize("dracula-wtf-server"))
	assert.Equal(t, "", normalize("   "))

	// 14 ASCII bytes then a 3-byte rune straddling the limit
	got := normalize("aaaaaaaaaaaaaa†tail")
	assert.Equal(t, "aaaaaaaaaaaaaa", got)
	assert.True(t, utf8.ValidString(got))
}

func TestSet_RejectsEmpty(t *testing.T) {
	assert.Error(t, Set(" "))
}
