// Package asciinum decodes runs of ASCII decimal digits, with an optional
// leading '-', straight into int32 and int64 values.
//
// The decoders work on a borrowed []byte or string, never allocate on
// success and never write to their input, so they are safe to call from
// any number of goroutines at once. A leading '+' is not a sign and is
// reported as an invalid character.
package asciinum

// Int32 decodes the whole of src as an int32.
func Int32[S ~[]byte | ~string](src S) (int32, error) {
	return ParseInt32(src, 0, len(src))
}

// Int64 decodes the whole of src as an int64.
func Int64[S ~[]byte | ~string](src S) (int64, error) {
	return ParseInt64(src, 0, len(src))
}

// MustInt32 is like Int32 but panics with the *NumError on failure.
// it's meant for input that was validated or generated beforehand.
func MustInt32[S ~[]byte | ~string](src S) int32 {
	i32, err := ParseInt32(src, 0, len(src))
	if err != nil {
		panic(err)
	}
	return i32
}

// MustInt64 is like Int64 but panics with the *NumError on failure.
func MustInt64[S ~[]byte | ~string](src S) int64 {
	i64, err := ParseInt64(src, 0, len(src))
	if err != nil {
		panic(err)
	}
	return i64
}
