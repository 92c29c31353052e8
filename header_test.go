package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArrayHeaderPrimitiveInline(t *testing.T) {
	t.Parallel()

	hdr, err := parseArrayHeader("[3]: 1,2,3")
	require.NoError(t, err)
	assert.Equal(t, 3, hdr.Length)
	assert.Equal(t, byte(','), hdr.Delimiter)
	assert.Nil(t, hdr.Fields)
	assert.Equal(t, "1,2,3", hdr.Inline)
}

func TestParseArrayHeaderTabularWithFields(t *testing.T) {
	t.Parallel()

	hdr, err := parseArrayHeader("[2]{id,name}:")
	require.NoError(t, err)
	assert.Equal(t, 2, hdr.Length)
	assert.Equal(t, []string{"id", "name"}, hdr.Fields)
	assert.Equal(t, "", hdr.Inline)
}

func TestParseArrayHeaderDelimiters(t *testing.T) {
	t.Parallel()

	hdr, err := parseArrayHeader("[2\t]{a\tb}:")
	require.NoError(t, err)
	assert.Equal(t, byte('\t'), hdr.Delimiter)
	assert.Equal(t, []string{"a", "b"}, hdr.Fields)

	hdr, err = parseArrayHeader("[1|]: x")
	require.NoError(t, err)
	assert.Equal(t, byte('|'), hdr.Delimiter)
}

func TestParseArrayHeaderEmptyList(t *testing.T) {
	t.Parallel()

	hdr, err := parseArrayHeader("[0]:")
	require.NoError(t, err)
	assert.Equal(t, 0, hdr.Length)
	assert.Equal(t, "", hdr.Inline)
}

func TestParseArrayHeaderRejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := parseArrayHeader("[abc]:")
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = parseArrayHeader("[3")
	assert.ErrorIs(t, err, ErrInvalidHeader)

	_, err = parseArrayHeader("[3] no colon here")
	assert.ErrorIs(t, err, ErrMissingColon)
}

func TestLooksLikeHeaderAndSplitHeaderKey(t *testing.T) {
	t.Parallel()

	assert.True(t, looksLikeHeader("tags[3]: a,b,c"))
	assert.False(t, looksLikeHeader("plain: value"))

	key, header, ok := splitHeaderKey(`"my.key"[2]{a,b}:`)
	require.True(t, ok)
	assert.Equal(t, `"my.key"`, key)
	assert.Equal(t, "[2]{a,b}:", header)
}
