package asciinum

// digit reports the value of char and whether it is in '0'..'9'.
// chars below '0' wrap around and fail the same compare.
func digit(char byte) (uint8, bool) {
	num := char - '0'
	return num, num <= 9
}
