package huffmantext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseCode(t *testing.T, str string) Code {
	t.Helper()
	hc, err := ParseCode(str)
	require.NoError(t, err)
	return hc
}

func TestDecoder_Decode(t *testing.T) {
	tree := makeTestTree(t)

	type testRow struct {
		bits     string
		text     string
		consumed int
		pending  int
	}

	testData := [...]testRow{
		{bits: "", text: "", consumed: 0},
		{bits: "0", text: "f", consumed: 1},
		{bits: "1100", text: "a", consumed: 4},
		{bits: "11001101100101111", text: "abcde", consumed: 17},
		{bits: "01", text: "f", consumed: 1, pending: 1},
		{bits: "0110", text: "f", consumed: 1, pending: 3},
		{bits: "1", text: "", consumed: 0, pending: 1},
	}
	for _, row := range testData {
		t.Run(mustParseCode(t, row.bits).String(), func(t *testing.T) {
			bits := mustParseCode(t, row.bits)

			text, err := tree.Decode(bits)
			assert.Equal(t, row.text, text)
			if row.pending == 0 {
				assert.NoError(t, err)
			} else {
				var tie *TruncatedInputError
				require.True(t, errors.As(err, &tie), "expected *TruncatedInputError, got %v", err)
				assert.Equal(t, row.consumed, tie.Consumed)
				assert.Equal(t, row.pending, tie.Pending)
				assert.ErrorIs(t, err, ErrTruncatedInput)
			}

			prefix, consumed := DecodePrefix(tree.Root(), bits)
			assert.Equal(t, row.text, prefix)
			assert.Equal(t, row.consumed, consumed)
		})
	}
}

func TestDecoder_DecodeString(t *testing.T) {
	tree, err := BuildTreeFromText("aabbbcc")
	require.NoError(t, err)

	text, err := tree.DecodeString("10100001111")
	require.NoError(t, err)
	assert.Equal(t, "aabbbcc", text)

	_, err = tree.DecodeString("10x1")
	assert.ErrorIs(t, err, ErrInvalidDigit)
	var ide *InvalidDigitError
	require.True(t, errors.As(err, &ide))
	assert.Equal(t, 2, ide.Offset)
	assert.Equal(t, 'x', ide.Char)
}

func TestDecoder_SingleSymbol(t *testing.T) {
	tree, err := BuildTreeFromText("aaaa")
	require.NoError(t, err)
	assert.True(t, tree.Root().IsLeaf())
	assert.Equal(t, 0, tree.Depth())

	encoded, err := tree.EncodeString("aaaa")
	require.NoError(t, err)
	assert.Equal(t, "0000", encoded)

	text, err := tree.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, "aaaa", text)

	text, err = tree.DecodeString("0010")
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.Equal(t, "aa", text)

	prefix, consumed := DecodePrefix(tree.Root(), mustParseCode(t, "0010"))
	assert.Equal(t, "aa", prefix)
	assert.Equal(t, 2, consumed)
}

func TestVerifyRoundTrip(t *testing.T) {
	tree, err := BuildTreeFromText("hello, world")
	require.NoError(t, err)

	assert.NoError(t, VerifyRoundTrip(tree, "hello, world"))
	assert.NoError(t, VerifyRoundTrip(tree, "low hold"))
	assert.ErrorIs(t, VerifyRoundTrip(tree, "hello, moon"), ErrUnknownSymbol)
}

func TestDecoder_HighBits(t *testing.T) {
	tree := makeTestTree(t)
	root := tree.Root()

	assert.Same(t, root.Left, root.Child(Bit(2)))
	assert.Same(t, root.Right, root.Child(Bit(3)))

	bits := Code{Bit(2)}
	assert.Equal(t, "0", bits.Digits())
	text, err := tree.Decode(bits)
	require.NoError(t, err)
	assert.Equal(t, "f", text)

	single, err := BuildTreeFromText("zz")
	require.NoError(t, err)
	text, err = single.Decode(Code{Bit(2), Zero})
	require.NoError(t, err)
	assert.Equal(t, "zz", text)
}
