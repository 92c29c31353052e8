package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsQuoting(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		s    string
		want bool
	}{
		{"", true},
		{"hello", false},
		{" hello", true},
		{"hello ", true},
		{"true", true},
		{"false", true},
		{"null", true},
		{"-5", true},
		{"007", true},
		{"1.5e10", true},
		{"a,b", true},
		{"a:b", true},
		{`a"b`, true},
		{"a\tb", true},
		{"plain_bare.key", false},
	} {
		assert.Equal(t, tc.want, needsQuoting(tc.s, ','), "needsQuoting(%q)", tc.s)
	}
}

func TestNeedsQuotingRespectsActiveDelimiter(t *testing.T) {
	t.Parallel()

	assert.False(t, needsQuoting("a,b", '\t'))
	assert.True(t, needsQuoting("a\tb", '\t'))
}

func TestIsValidBareKey(t *testing.T) {
	t.Parallel()

	assert.True(t, isValidBareKey("field_1"))
	assert.True(t, isValidBareKey("a.b.c"))
	assert.False(t, isValidBareKey(""))
	assert.False(t, isValidBareKey("1field"))
	assert.False(t, isValidBareKey("has space"))
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"plain", "with\nnewline", "with\ttab", `with"quote`, `with\backslash`} {
		quoted := `"` + escape(s) + `"`
		got, err := unescape(quoted)
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestUnescapeRejectsUnterminated(t *testing.T) {
	t.Parallel()

	_, err := unescape(`"unterminated`)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)
}

func TestUnescapeRejectsInvalidEscape(t *testing.T) {
	t.Parallel()

	_, err := unescape(`"bad \q escape"`)
	assert.ErrorIs(t, err, ErrInvalidEscape)
}

func TestQuoteValueAndKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bare", quoteValue("bare", ','))
	assert.Equal(t, "has space", quoteValue("has space", ','))
	assert.Equal(t, "field", quoteKey("field"))
	assert.Equal(t, `"has space"`, quoteKey("has space"))
}
