package arith

const (
	x01 = 0x0101010101010101
)

// Word packs the eight bytes of src starting at pos into a little endian
// word, so src[pos] lands in the lowest byte. the caller guarantees
// pos+8 <= len(src).
func Word[S ~[]byte | ~string](src S, pos int) uint64 {
	_ = src[pos+7]
	return uint64(src[pos]) | uint64(src[pos+1])<<8 | uint64(src[pos+2])<<16 | uint64(src[pos+3])<<24 |
		uint64(src[pos+4])<<32 | uint64(src[pos+5])<<40 | uint64(src[pos+6])<<48 | uint64(src[pos+7])<<56
}

// EightDigits folds eight ASCII digits packed by Word into their value,
// lowest byte being the most significant digit.
// https://lemire.me/blog/2022/01/21/swar-explained-parsing-eight-digits/
func EightDigits(u64 uint64) uint64 {
	u64 = u64 & 0x0F0F0F0F0F0F0F0F * 2561 >> 8
	u64 = u64 & 0x00FF00FF00FF00FF * 6553601 >> 16
	u64 = u64 & 0x0000FFFF0000FFFF * 42949672960001 >> 32
	return u64
}

// IsEightDigits reports whether every byte of u64 is in '0'..'9'.
// a carry out of an invalid byte can only spoil the next byte,
// so the answer stays false when any byte is invalid.
func IsEightDigits(u64 uint64) bool {
	return u64&(u64+x01*0x06)&(x01*0xf0) == x01*0x30
}
