package ferr_test

import (
	"errors"
	"testing"

	"github.com/arcflux/flatgo/ferr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := ferr.New(ferr.BadAlign, 4)
	assert.Equal(t, "flat: BadAlign at byte offset 4", err.Error())
}

func TestOffsetComposes(t *testing.T) {
	inner := ferr.New(ferr.InvalidData, 3)
	outer := inner.Offset(10)
	require.Equal(t, 13, outer.Pos)
	assert.Equal(t, ferr.InvalidData, outer.Kind)

	// Offset is non-mutating: the original error is untouched.
	assert.Equal(t, 3, inner.Pos)
}

func TestOffsetComposesAcrossMultipleLevels(t *testing.T) {
	// Error offsets compose: a failure at position p inside a field
	// starting at offset f of the outer value surfaces as p+f.
	err := ferr.New(ferr.InsufficientSize, 2).Offset(8).Offset(16)
	assert.Equal(t, 26, err.Pos)
}

func TestErrorsIsMatchesByKindOnly(t *testing.T) {
	err := ferr.New(ferr.BadAlign, 42)
	assert.True(t, errors.Is(err, ferr.ErrBadAlign))
	assert.False(t, errors.Is(err, ferr.ErrInsufficientSize))
}

func TestKindString(t *testing.T) {
	cases := []struct {
		kind ferr.ErrorKind
		want string
	}{
		{ferr.InsufficientSize, "InsufficientSize"},
		{ferr.BadAlign, "BadAlign"},
		{ferr.InvalidEnumTag, "InvalidEnumTag"},
		{ferr.InvalidData, "InvalidData"},
		{ferr.Other, "Other"},
		{ferr.ErrorKind(255), "Unknown"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.kind.String())
	}
}
