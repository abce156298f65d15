package str

import (
	"unicode/utf8"

	"github.com/arcflux/flatgo/ferr"
	"github.com/arcflux/flatgo/vec"
)

var byteElem = vec.Elem[byte]{
	Align: 1,
	Size:  1,
	Parse: func(b []byte) (*byte, error) {
		v := b[0]
		return &v, nil
	},
	Emplace: func(dst []byte, v byte) error {
		dst[0] = v
		return nil
	},
}

// FlatString is an inline, growable, UTF-8 validated string.
type FlatString struct {
	v *vec.FlatVec[byte]
}

// New default-initializes an empty FlatString over buf.
func New(lc vec.LenCodec, buf []byte) (*FlatString, error) {
	v, err := vec.New(byteElem, lc, buf)
	if err != nil {
		return nil, err
	}

	return &FlatString{v: v}, nil
}

// FromStr default-initializes buf and then appends s, failing with
// InsufficientSize if s doesn't fit.
func FromStr(lc vec.LenCodec, buf []byte, s string) (*FlatString, error) {
	fs, err := New(lc, buf)
	if err != nil {
		return nil, err
	}
	if n := fs.PushStr(s); n < len(s) {
		return nil, ferr.New(ferr.InsufficientSize, fs.v.Size())
	}

	return fs, nil
}

// Parse validates buf as a FlatString: the vec header/bounds must be valid,
// and the active region must be valid UTF-8 end to end.
func Parse(lc vec.LenCodec, buf []byte) (*FlatString, error) {
	v, err := vec.Parse(byteElem, lc, buf)
	if err != nil {
		return nil, err
	}

	fs := &FlatString{v: v}
	if err := fs.validateUTF8(); err != nil {
		return nil, err
	}

	return fs, nil
}

func (s *FlatString) validateUTF8() error {
	b := s.activeBytes()
	validUpTo := 0
	for validUpTo < len(b) {
		r, size := utf8.DecodeRune(b[validUpTo:])
		if r == utf8.RuneError && size <= 1 {
			return ferr.New(ferr.InvalidData, dataOffset(s.v)+validUpTo)
		}
		validUpTo += size
	}

	return nil
}

func dataOffset(v *vec.FlatVec[byte]) int {
	return v.Size() - v.Len()
}

func (s *FlatString) activeBytes() []byte {
	n := s.v.Len()
	out := make([]byte, n)
	for i := range n {
		e, _ := s.v.At(i)
		out[i] = *e
	}

	return out
}

// Len returns the active byte length.
func (s *FlatString) Len() int { return s.v.Len() }

// Capacity returns the maximum number of bytes the backing buffer holds.
func (s *FlatString) Capacity() int { return s.v.Capacity() }

// Remaining is Capacity minus Len.
func (s *FlatString) Remaining() int { return s.v.Remaining() }

// Size is the header plus the active byte length.
func (s *FlatString) Size() int { return s.v.Size() }

// String returns the active region as a Go string.
func (s *FlatString) String() string { return string(s.activeBytes()) }

// PushStr appends as much of s as fits, returning the number of bytes
// actually appended. Because the active region is always valid UTF-8 and s
// is a Go string (also always valid UTF-8), any prefix boundary that keeps
// whole runes preserves the invariant; PushStr only ever stops at a byte
// that completes a full rune.
func (s *FlatString) PushStr(str string) int {
	b := []byte(str)
	pushed := 0
	for pushed < len(b) {
		if !s.v.Push(b[pushed]) {
			break
		}
		pushed++
	}
	// If we stopped mid-rune (ran out of capacity inside a multi-byte
	// sequence), back out the partial rune's bytes to preserve UTF-8
	// validity of the active region.
	for pushed > 0 && !utf8.Valid(b[:pushed]) {
		s.v.Pop()
		pushed--
	}

	return pushed
}

// Clear truncates the string back to empty.
func (s *FlatString) Clear() {
	for s.v.Len() > 0 {
		s.v.Pop()
	}
}

// Equal reports byte-for-byte equality of the active regions.
func Equal(a, b *FlatString) bool {
	return vec.Equal(a.v, b.v, func(x, y byte) bool { return x == y })
}
