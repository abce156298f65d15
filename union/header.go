package union

import (
	"github.com/arcflux/flatgo/ferr"
	"github.com/arcflux/flatgo/internal/align"
)

// DataOffset returns the byte offset of the payload region: the tag's own
// size, rounded up to payloadAlign so that every variant's payload starts
// correctly aligned regardless of which one is active.
func DataOffset(tc TagCodec, payloadAlign int) int {
	return align.CeilMul(tc.Size(), payloadAlign)
}

// Align is the union's own required alignment: the largest alignment any
// variant's payload demands (the tag itself is always alignment 1).
func Align(payloadAlign int) int {
	return align.Max(1, payloadAlign)
}

// ValidateTag reads the discriminant from b and checks it is within
// [0, variantCount). It is the only check ever made before a payload byte
// is inspected, so an out-of-range tag is reported without touching the
// payload at all.
func ValidateTag(b []byte, tc TagCodec, variantCount int) (int, error) {
	if len(b) < tc.Size() {
		return 0, ferr.New(ferr.InsufficientSize, 0)
	}
	tag := tc.Get(b)
	if tag < 0 || tag >= variantCount {
		return 0, ferr.New(ferr.InvalidEnumTag, 0)
	}

	return tag, nil
}
