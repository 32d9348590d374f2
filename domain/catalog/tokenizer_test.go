package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "drops stopwords and short tokens",
			input:    "El Libro de la Vida",
			expected: []string{"libro", "vida"},
		},
		{
			name:     "splits on punctuation and whitespace",
			input:    "historia-sagrada: tomo_segundo",
			expected: []string{"historia", "sagrada", "tomo", "segundo"},
		},
		{
			name:     "keeps numeric tokens of enough length",
			input:    "salmos 119 edicion 2024",
			expected: []string{"salmos", "119", "edicion", "2024"},
		},
		{
			name:     "short tokens are dropped by rune count not bytes",
			input:    "añil io ñu",
			expected: []string{"añil"},
		},
		{
			name:     "all stopwords yields nothing",
			input:    "el la los las un una de que para",
			expected: []string{},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenSet_UnionsSortsAndDedupes(t *testing.T) {
	tokens := TokenSet("El Libro de la Vida", "una vida con el libro abierto")

	assert.Equal(t, []string{"abierto", "libro", "vida"}, tokens)
}

func TestTokenSet_EmptyDescription(t *testing.T) {
	tokens := TokenSet("El Libro de la Vida", "")

	assert.Equal(t, []string{"libro", "vida"}, tokens)
}

func TestTokenSet_NothingIndexable(t *testing.T) {
	tokens := TokenSet("el de la", "un una")

	assert.Empty(t, tokens)
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("el"))
	assert.True(t, IsStopword("EL"))
	assert.True(t, IsStopword("para"))
	assert.False(t, IsStopword("libro"))
}
