package axml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferReads(t *testing.T) {
	b := buffer{0x03, 0x00, 0x08, 0x00, 0xff}

	u16, err := b.u16(0)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0003), u16)

	u32, err := b.u32(0)
	require.NoError(t, err)
	require.Equal(t, uint32(0x00080003), u32)

	u8, err := b.u8(4)
	require.NoError(t, err)
	require.Equal(t, uint8(0xff), u8)
}

func TestBufferOutOfRange(t *testing.T) {
	b := buffer{0x01, 0x02, 0x03}

	t.Run("u16 past end", func(t *testing.T) {
		_, err := b.u16(2)
		require.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("u32 longer than buffer", func(t *testing.T) {
		_, err := b.u32(0)
		require.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("negative offset", func(t *testing.T) {
		_, err := b.u8(-1)
		require.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("huge offset", func(t *testing.T) {
		_, err := b.u32(math.MaxInt - 1)
		require.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("empty buffer", func(t *testing.T) {
		_, err := buffer(nil).u8(0)
		require.ErrorIs(t, err, ErrTruncated)
	})
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name   string
		base   int
		deltas []int
		want   int
		ok     bool
	}{
		{"no deltas", 8, nil, 8, true},
		{"sum", 8, []int{28, 40}, 76, true},
		{"negative base", -1, nil, 0, false},
		{"negative delta", 8, []int{-4}, 0, false},
		{"overflow", math.MaxInt - 3, []int{4}, 0, false},
		{"max", math.MaxInt - 4, []int{4}, math.MaxInt, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := offset(tc.base, tc.deltas...)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}
