package blockbench

import (
	"errors"
	"fmt"
)

var (
	ErrOddHexLength     = errors.New("odd hex length")
	ErrInvalidHexSymbol = errors.New("not hex symbol")
)

func hexDecodeSymbol(sym byte) (byte, bool) {
	switch {
	case sym >= '0' && sym <= '9':
		return sym - '0', true
	case sym >= 'a' && sym <= 'f':
		return sym - 'a' + 10, true
	}
	return 0, false
}

// DecodeHexLower decodes lowercase hex without going through encoding/hex.
// Uppercase digits are rejected.
func DecodeHexLower(s []byte) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddHexLength, len(s))
	}

	b := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := hexDecodeSymbol(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at %d", ErrInvalidHexSymbol, s[i], i)
		}
		lo, ok := hexDecodeSymbol(s[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: %q at %d", ErrInvalidHexSymbol, s[i+1], i+1)
		}

		b[i/2] = hi<<4 | lo
	}
	return b, nil
}
