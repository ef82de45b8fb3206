package arith

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWord(t *testing.T) {
	str := "x12345678"
	assert.Equal(t, uint64(0x3837363534333231), Word(str, 1))
	assert.Equal(t, Word(str, 1), Word([]byte(str), 1))
}

func TestEightDigits(t *testing.T) {
	for _, str := range []string{"00000000", "00000001", "10000000", "12345678", "99999999", "00420042"} {
		want, err := strconv.ParseUint(str, 10, 64)
		require.NoError(t, err)
		assert.Equal(t, want, EightDigits(Word(str, 0)), str)
	}
}

func TestIsEightDigits(t *testing.T) {
	assert.True(t, IsEightDigits(Word("01234567", 0)))
	assert.True(t, IsEightDigits(Word("99999999", 0)))

	// every byte value at every position, the other seven being digits.
	for pos := 0; pos < 8; pos++ {
		for c := 0; c < 256; c++ {
			buf := []byte("55555555")
			buf[pos] = byte(c)
			want := c >= '0' && c <= '9'
			assert.Equal(t, want, IsEightDigits(Word(buf, 0)), "pos %d byte %#x", pos, c)
		}
	}
}

func TestIsEightDigitsCarry(t *testing.T) {
	// a byte that carries on +6 must not turn its neighbour valid.
	buf := []byte{0xfa, '9', '9', '9', '9', '9', '9', '9'}
	assert.False(t, IsEightDigits(Word(buf, 0)))
	buf = []byte{'9', '9', '9', '9', '9', '9', '9', 0xff}
	assert.False(t, IsEightDigits(Word(buf, 0)))
}
