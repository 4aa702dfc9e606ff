package landmark

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	t.Run("All landmarks", func(t *testing.T) {
		indices := Select(false)

		require.Len(t, indices, Count)
		for i, idx := range indices {
			require.Equal(t, Index(i), idx)
		}
	})

	t.Run("Important subset", func(t *testing.T) {
		indices := Select(true)

		require.Len(t, indices, 16)
		require.Equal(t, []Index{11, 12, 13, 14, 15, 16, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32}, indices)
	})

	t.Run("Fresh slice per call", func(t *testing.T) {
		a := Select(true)
		a[0] = Nose

		b := Select(true)
		require.Equal(t, LeftShoulder, b[0])
	})
}

func TestIndex_String(t *testing.T) {
	require.Equal(t, "nose", Nose.String())
	require.Equal(t, "left_shoulder", LeftShoulder.String())
	require.Equal(t, "right_foot_index", RightFootIndex.String())
	require.Equal(t, "landmark(40)", Index(40).String())
}

func TestIndex_Valid(t *testing.T) {
	require.True(t, Index(0).Valid())
	require.True(t, Index(32).Valid())
	require.False(t, Index(33).Valid())
}

func TestIndex_JSON(t *testing.T) {
	indices := []Index{11, 12, 32}

	b, err := json.Marshal(indices)
	require.NoError(t, err)
	require.JSONEq(t, `[11,12,32]`, string(b))

	var parsed []Index
	require.NoError(t, json.Unmarshal(b, &parsed))
	require.Equal(t, indices, parsed)

	var bad Index
	require.Error(t, json.Unmarshal([]byte(`300`), &bad))
}
