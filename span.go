package asciinum

// span validates (off, length) against src and consumes an optional
// leading '-'. it returns the digit region [pos, end).
func span[S ~[]byte | ~string](src S, off, length, width int) (pos, end int, minus bool, err error) {
	if off < 0 || length < 0 || off > len(src)-length {
		return 0, 0, false, errBounds(width, off)
	}
	if length == 0 {
		return 0, 0, false, errEmpty(width, off)
	}
	pos, end = off, off+length
	if src[pos] == '-' {
		minus = true
		pos++
		if pos == end {
			return 0, 0, false, errEmpty(width, off)
		}
	}
	return pos, end, minus, nil
}
