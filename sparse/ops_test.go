// Package sparse_test contains unit tests for per-handle operations.
package sparse_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/ndslice/sparse"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// TestGetSet reads unset entries as zero and rejects out-of-range coordinates.
func TestGetSet(t *testing.T) {
	eng := sparse.NewEngine()
	h := mustCreate(t, eng, 3, 4)

	require.Zero(t, mustGet(t, eng, h, 2, 3))
	require.NoError(t, eng.Set(h, 2, 3, 1.5))
	require.Equal(t, 1.5, mustGet(t, eng, h, 2, 3))

	_, err := eng.Get(h, 3, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfBounds)
	require.EqualError(t, err, "sparse.Get("+h.String()+",3,0): sparse: index out of bounds")

	require.ErrorIs(t, eng.Set(h, 0, 4, 1), sparse.ErrOutOfBounds)
	require.ErrorIs(t, eng.Set(h, -1, 0, 1), sparse.ErrOutOfBounds)
	require.Equal(t, 1, mustNNZ(t, eng, h))
}

// TestStorageModes follows the compressed/uncompressed transitions.
func TestStorageModes(t *testing.T) {
	eng := sparse.NewEngine()
	h := mustCreate(t, eng, 4, 4)
	require.True(t, mustCompressed(t, eng, h))

	// inserting a new entry leaves compressed mode
	require.NoError(t, eng.Set(h, 1, 2, 5))
	require.False(t, mustCompressed(t, eng, h))
	require.NoError(t, eng.Set(h, 0, 2, 4))
	require.NoError(t, eng.Set(h, 3, 0, 1))

	require.NoError(t, eng.Compress(h))
	require.True(t, mustCompressed(t, eng, h))
	require.Equal(t, 5.0, mustGet(t, eng, h, 1, 2))
	require.Equal(t, 4.0, mustGet(t, eng, h, 0, 2))
	require.Equal(t, 1.0, mustGet(t, eng, h, 3, 0))
	require.Zero(t, mustGet(t, eng, h, 2, 2))

	// updating a stored entry keeps compressed mode
	require.NoError(t, eng.Set(h, 1, 2, -5))
	require.True(t, mustCompressed(t, eng, h))
	require.Equal(t, -5.0, mustGet(t, eng, h, 1, 2))

	require.NoError(t, eng.Compress(h)) // no-op
	require.NoError(t, eng.Uncompress(h))
	require.False(t, mustCompressed(t, eng, h))
	require.NoError(t, eng.Uncompress(h)) // no-op
	require.Equal(t, -5.0, mustGet(t, eng, h, 1, 2))
	require.Equal(t, 3, mustNNZ(t, eng, h))
}

// TestReset keeps the shape and the storage mode.
func TestReset(t *testing.T) {
	eng := sparse.NewEngine()
	h := mustCreate(t, eng, 2, 2)
	require.NoError(t, eng.Set(h, 0, 1, 9))
	require.NoError(t, eng.Reset(h))
	require.False(t, mustCompressed(t, eng, h))
	require.Zero(t, mustNNZ(t, eng, h))
	require.Zero(t, mustGet(t, eng, h, 0, 1))

	require.NoError(t, eng.Set(h, 1, 1, 2))
	require.NoError(t, eng.Compress(h))
	require.NoError(t, eng.Reset(h))
	require.True(t, mustCompressed(t, eng, h))
	require.Zero(t, mustNNZ(t, eng, h))
	r, _ := eng.Rows(h)
	require.Equal(t, int32(2), r)

	// a reset compressed matrix accepts new entries
	require.NoError(t, eng.Set(h, 1, 0, 7))
	require.Equal(t, 7.0, mustGet(t, eng, h, 1, 0))
}

// TestReshape keeps column-major positions.
func TestReshape(t *testing.T) {
	for _, compressed := range []bool{true, false} {
		eng := sparse.NewEngine()
		h := mustCreate(t, eng, 2, 3)
		require.NoError(t, eng.Set(h, 1, 0, 1)) // linear 1
		require.NoError(t, eng.Set(h, 1, 1, 3)) // linear 3
		require.NoError(t, eng.Set(h, 0, 2, 4)) // linear 4
		if compressed {
			require.NoError(t, eng.Compress(h))
		}

		require.NoError(t, eng.Reshape(h, 3, 2))
		require.Equal(t, compressed, mustCompressed(t, eng, h))
		require.Equal(t, 1.0, mustGet(t, eng, h, 1, 0))
		require.Equal(t, 3.0, mustGet(t, eng, h, 0, 1))
		require.Equal(t, 4.0, mustGet(t, eng, h, 1, 1))
		require.Equal(t, 3, mustNNZ(t, eng, h))

		err := eng.Reshape(h, 4, 2)
		require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
		require.ErrorIs(t, eng.Reshape(h, -2, -3), sparse.ErrInvalidDimensions)
		c, _ := eng.Cols(h)
		require.Equal(t, int32(2), c)

		require.NoError(t, eng.Reshape(h, 6, 1))
		require.Equal(t, 4.0, mustGet(t, eng, h, 4, 0))
	}
}

// TestCloneIndependence: mutations of the clone never reach the source.
func TestCloneIndependence(t *testing.T) {
	eng := sparse.NewEngine()
	h := mustCreate(t, eng, 3, 4)
	require.NoError(t, eng.Set(h, 2, 1, 8))

	c, err := eng.Clone(h)
	require.NoError(t, err)
	require.NotEqual(t, h, c)
	require.False(t, mustCompressed(t, eng, c))
	require.NoError(t, eng.Set(c, 2, 1, -8))
	require.NoError(t, eng.Set(c, 0, 0, 1))

	require.Equal(t, 8.0, mustGet(t, eng, h, 2, 1))
	require.Zero(t, mustGet(t, eng, h, 0, 0))
	require.Equal(t, 1, mustNNZ(t, eng, h))

	require.NoError(t, eng.Destroy(h))
	require.Equal(t, -8.0, mustGet(t, eng, c, 2, 1))

	eager := sparse.NewEngine(sparse.WithCompressOnClone(true))
	h = mustCreate(t, eager, 2, 2)
	require.NoError(t, eager.Set(h, 0, 0, 1))
	c, err = eager.Clone(h)
	require.NoError(t, err)
	require.True(t, mustCompressed(t, eager, c))
	require.Equal(t, 1.0, mustGet(t, eager, c, 0, 0))
}

// TestRandomAgainstMap mixes random writes and mode switches and compares
// every coefficient with a plain map.
func TestRandomAgainstMap(t *testing.T) {
	const rows, cols = 9, 7
	r := rand.New(rand.NewSource(2024))
	eng := sparse.NewEngine()
	h := mustCreate(t, eng, rows, cols)
	want := map[[2]int32]float64{}

	for step := 0; step < 400; step++ {
		switch r.Intn(10) {
		case 0:
			require.NoError(t, eng.Compress(h))
		case 1:
			require.NoError(t, eng.Uncompress(h))
		default:
			i, j := int32(r.Intn(rows)), int32(r.Intn(cols))
			v := float64(r.Intn(100)) - 50
			require.NoError(t, eng.Set(h, i, j, v))
			want[[2]int32{i, j}] = v
		}
	}

	require.Equal(t, len(want), mustNNZ(t, eng, h))
	for i := int32(0); i < rows; i++ {
		for j := int32(0); j < cols; j++ {
			require.Equal(t, want[[2]int32{i, j}], mustGet(t, eng, h, i, j), "(%d,%d)", i, j)
		}
	}
}

// TestPrint renders stored entries column-major.
func TestPrint(t *testing.T) {
	eng := sparse.NewEngine()
	h := mustCreate(t, eng, 2, 2)
	require.NoError(t, eng.Set(h, 1, 1, 0.5))
	require.NoError(t, eng.Set(h, 0, 1, 2))

	var buf bytes.Buffer
	require.NoError(t, eng.Print(&buf, h))
	out := buf.String()
	require.Contains(t, out, "VALUE")
	require.Contains(t, out, "0.5")
	require.True(t, strings.HasSuffix(out, "\n2x2, 2 stored, compressed=false\n"), out)
	require.Less(t, bytes.Index(buf.Bytes(), []byte(" 2 ")), bytes.Index(buf.Bytes(), []byte("0.5")))
}

func mustGet(t *testing.T, eng *sparse.Engine, h sparse.Handle, i, j int32) float64 {
	t.Helper()
	v, err := eng.Get(h, i, j)
	require.NoError(t, err)

	return v
}

func mustNNZ(t *testing.T, eng *sparse.Engine, h sparse.Handle) int {
	t.Helper()
	n, err := eng.NNZ(h)
	require.NoError(t, err)

	return n
}

func mustCompressed(t *testing.T, eng *sparse.Engine, h sparse.Handle) bool {
	t.Helper()
	ok, err := eng.IsCompressed(h)
	require.NoError(t, err)

	return ok
}
