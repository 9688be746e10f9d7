package terminfo

import "math"

// pathExtra covers the separator after the directory, the layout
// directory (one character or two hex digits), the separator before the
// name and a terminator slot.
const pathExtra = 1 + 2 + 1 + 1

// addOverflowed adds src to *dst and reports whether the sum wrapped.
func addOverflowed(dst *uint, src uint) bool {
	*dst += src
	return *dst < src
}

// pathSize returns the buffer size needed for a candidate path. midLen
// already includes the middle segment's separator. Lengths come from the
// environment, so the sum is checked before anything is allocated.
func pathSize(dirLen, midLen, nameLen int) (int, error) {
	var n uint
	if dirLen < 0 || midLen < 0 || nameLen < 0 ||
		addOverflowed(&n, uint(dirLen)) ||
		addOverflowed(&n, uint(midLen)) ||
		addOverflowed(&n, uint(nameLen)) ||
		addOverflowed(&n, pathExtra) ||
		n > math.MaxInt {
		return 0, &Error{Op: "build path", Kind: KindHard, Err: ErrOutOfMemory}
	}
	return int(n), nil
}
