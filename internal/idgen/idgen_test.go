package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateN(t *testing.T, gen Generator, n int) []uuid.UUID {
	t.Helper()

	ids := make([]uuid.UUID, 0, n)
	for range n {
		id, err := gen.Generate()
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)
		ids = append(ids, id)
	}
	return ids
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		version Version
		opts    []V7Option
		want    uuid.Version
	}{
		{name: "v4", version: V4, want: 4},
		{name: "v7", version: V7, want: 7},
		{name: "v7 without retries", version: V7, opts: []V7Option{WithRetries(0)}, want: 7},
		{name: "v7 with retries", version: V7, opts: []V7Option{WithRetries(3)}, want: 7},
		{name: "unknown version falls back to v4", version: 0, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := map[uuid.UUID]bool{}
			for _, id := range generateN(t, New(tt.version, tt.opts...), 50) {
				assert.Equal(t, tt.want, id.Version())
				assert.False(t, seen[id], "duplicate id %s", id)
				seen[id] = true
			}
		})
	}
}

func TestWithRetries(t *testing.T) {
	tests := []struct {
		name string
		opts []V7Option
		want int
	}{
		{name: "default", want: 1},
		{name: "disabled", opts: []V7Option{WithRetries(0)}, want: 0},
		{name: "custom", opts: []V7Option{WithRetries(5)}, want: 5},
		{name: "negative ignored", opts: []V7Option{WithRetries(-2)}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, ok := New(V7, tt.opts...).(*v7Gen)
			require.True(t, ok)
			assert.Equal(t, tt.want, gen.maxRetries)
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      int
		want    Version
		wantErr bool
	}{
		{in: 4, want: V4},
		{in: 7, want: V7},
		{in: 0, wantErr: true},
		{in: 6, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseVersion(%d)", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestV7_Ordered(t *testing.T) {
	ids := generateN(t, NewV7(), 20)
	for i := 1; i < len(ids); i++ {
		assert.Greater(t, ids[i].String(), ids[i-1].String())
	}
}
