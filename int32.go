package asciinum

import (
	"math"

	"github.com/sugawarayuuta/asciinum/internal/arith"
)

// ParseInt32 decodes src[off:off+length] as a base 10 int32.
//
// the value is built as a non-positive number, since the negative half
// of the range is one wider than the positive one, and negated at the
// end unless a '-' was seen. the accumulator is 64 bits wide, so a
// single compare after each fold is enough to catch overflow.
func ParseInt32[S ~[]byte | ~string](src S, off, length int) (int32, error) {
	pos, end, minus, err := span(src, off, length, 32)
	if err != nil {
		return 0, err
	}
	var acc int64
	for ; end-pos >= 8; pos += 8 {
		word := arith.Word(src, pos)
		if !arith.IsEightDigits(word) {
			break
		}
		nxt := acc*100000000 - int64(arith.EightDigits(word))
		if nxt < math.MinInt32 {
			// let the loop below find the digit that overflowed.
			break
		}
		acc = nxt
	}
	for ; pos < end; pos++ {
		num, ok := digit(src[pos])
		if !ok {
			return 0, errChar(32, pos, src[pos])
		}
		acc = acc*10 - int64(num)
		if acc < math.MinInt32 {
			return 0, errOverflow(32, pos)
		}
	}
	if minus {
		return int32(acc), nil
	}
	if acc == math.MinInt32 {
		return 0, errOverflow(32, end-1)
	}
	return int32(-acc), nil
}
