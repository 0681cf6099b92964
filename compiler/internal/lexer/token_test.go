package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKindHasDisplayString(t *testing.T) {
	for k := TokInvalid; k <= TokBreak; k++ {
		s := k.String()
		require.NotEmpty(t, s)
		assert.NotContains(t, s, "TokKind(", "kind %d is missing from kindNames", int(k))
	}
}

func TestOutOfRangeKindDisplay(t *testing.T) {
	assert.Equal(t, "TokKind(999)", TokKind(999).String())
}

func TestOpenClassDisplayForms(t *testing.T) {
	assert.Equal(t, "<Invalid>", TokInvalid.String())
	assert.Equal(t, "<Identifier>", TokIdent.String())
	assert.Equal(t, "<Integer Literal>", TokInt.String())
	assert.Equal(t, "<End-Of-Input>", TokEOF.String())
}

func TestKeywordKindsDisplayAsSpelling(t *testing.T) {
	for spelling, kind := range keywords {
		assert.Equal(t, spelling, kind.String())
	}
}

func TestKeywordLookupIsExactMatch(t *testing.T) {
	if _, ok := keywordKind("Return"); ok {
		t.Fatal("keyword lookup must be case-sensitive")
	}
	if _, ok := keywordKind("func"); ok {
		t.Fatal("non-keyword spelling must miss")
	}
	kind, ok := keywordKind("double")
	require.True(t, ok)
	assert.Equal(t, TokKwDouble, kind)
}
