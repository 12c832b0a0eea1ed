package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldStripsCombiningMarks(t *testing.T) {
	assert.Equal(t, "Jurgen", Fold("Jürgen"))
	assert.Equal(t, "Jurg", Fold("Jürg"))
}

func TestFoldIsIdempotentOnPlainASCII(t *testing.T) {
	assert.Equal(t, "Monday", Fold("Monday"))
}

func TestCaseFoldLowercasesAfterFolding(t *testing.T) {
	assert.Equal(t, "jurgen", CaseFold("JÜRGEN"))
}
