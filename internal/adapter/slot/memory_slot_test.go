package slot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySlotAbsentKey(t *testing.T) {
	s := NewMemorySlot()
	raw, ok, err := s.Read(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestMemorySlotRoundTrip(t *testing.T) {
	s := NewMemorySlot()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "s1", []byte(`[{"id":"pet-raccoon"}]`)))
	raw, ok, err := s.Read(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"pet-raccoon"}]`, string(raw))
}

func TestMemorySlotCopiesPayloads(t *testing.T) {
	s := NewMemorySlot()
	ctx := context.Background()

	in := []byte(`[]`)
	require.NoError(t, s.Write(ctx, "s1", in))
	in[0] = 'X'

	raw, _, err := s.Read(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))

	raw[0] = 'Y'
	again, _, err := s.Read(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(again))
}

func TestMemorySlotOverwrite(t *testing.T) {
	s := NewMemorySlot()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "s1", []byte(`[1]`)))
	require.NoError(t, s.Write(ctx, "s1", []byte(`[]`)))

	raw, ok, err := s.Read(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(raw))
}
