package asciinum

import (
	"math"

	"github.com/sugawarayuuta/asciinum/internal/arith"
)

const (
	// eighteen digits are at most 999999999999999999 < math.MaxInt64.
	safe64   = 18
	cutoff64 = math.MinInt64 / 10
)

// ParseInt64 decodes src[off:off+length] as a base 10 int64.
//
// like ParseInt32 the value is accumulated as a non-positive number.
// there's no wider register to fall back on, so the first safe64 digits
// are folded without checks and only the ones after that pay for the
// overflow tests.
func ParseInt64[S ~[]byte | ~string](src S, off, length int) (int64, error) {
	pos, end, minus, err := span(src, off, length, 64)
	if err != nil {
		return 0, err
	}
	safe := end
	if end-pos > safe64 {
		safe = pos + safe64
	}
	var acc int64
	for ; safe-pos >= 8; pos += 8 {
		word := arith.Word(src, pos)
		if !arith.IsEightDigits(word) {
			break
		}
		acc = acc*100000000 - int64(arith.EightDigits(word))
	}
	for ; pos < safe; pos++ {
		num, ok := digit(src[pos])
		if !ok {
			return 0, errChar(64, pos, src[pos])
		}
		acc = acc*10 - int64(num)
	}
	for ; pos < end; pos++ {
		num, ok := digit(src[pos])
		if !ok {
			return 0, errChar(64, pos, src[pos])
		}
		if acc < cutoff64 {
			return 0, errOverflow(64, pos)
		}
		acc *= 10
		if acc < math.MinInt64+int64(num) {
			return 0, errOverflow(64, pos)
		}
		acc -= int64(num)
	}
	if minus {
		return acc, nil
	}
	if acc == math.MinInt64 {
		return 0, errOverflow(64, end-1)
	}
	return -acc, nil
}
