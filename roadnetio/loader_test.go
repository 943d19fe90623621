package roadnetio

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/corridor/roadnet"
)

func writeFile(t *testing.T, dir, name, contents string, gzipped bool) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if !gzipped {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
		return path
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

const threeVertices = "0,0.0,0.0\n1,0.01,0.0\n2,0.02,0.0\n"
const twoEdges = "0,0,1,1000\n1,1,2,1000\n"

func TestLoadGraph_PlainCSV(t *testing.T) {
	dir := t.TempDir()
	vPath := writeFile(t, dir, "vertices.csv", threeVertices, false)
	ePath := writeFile(t, dir, "edges.csv", twoEdges, false)

	g, err := LoadGraph(vPath, ePath)
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())

	e0, err := g.Edge(0)
	require.NoError(t, err)
	require.Equal(t, 1000.0, e0.Length)
}

func TestLoadGraph_GzippedCSV(t *testing.T) {
	dir := t.TempDir()
	vPath := writeFile(t, dir, "vertices.csv.gz", threeVertices, true)
	ePath := writeFile(t, dir, "edges.csv.gz", twoEdges, true)

	g, err := LoadGraph(vPath, ePath)
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
}

func TestLoadGraph_EmptyVerticesFileIsRejected(t *testing.T) {
	dir := t.TempDir()
	vPath := writeFile(t, dir, "vertices.csv", "", false)
	ePath := writeFile(t, dir, "edges.csv", "", false)

	_, err := LoadGraph(vPath, ePath)
	require.ErrorIs(t, err, ErrEmptyVerticesFile)
}

func TestLoadGraph_NonContiguousVertexIdIsRejected(t *testing.T) {
	dir := t.TempDir()
	vPath := writeFile(t, dir, "vertices.csv", "0,0.0,0.0\n5,0.01,0.0\n", false)
	ePath := writeFile(t, dir, "edges.csv", "", false)

	_, err := LoadGraph(vPath, ePath)
	require.Error(t, err)
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, 1, rowErr.Row)
}

func TestLoadGraph_DanglingEdgeEndpointIsRejected(t *testing.T) {
	dir := t.TempDir()
	vPath := writeFile(t, dir, "vertices.csv", threeVertices, false)
	ePath := writeFile(t, dir, "edges.csv", "0,0,9,1000\n", false)

	_, err := LoadGraph(vPath, ePath)
	require.ErrorIs(t, err, roadnet.ErrDanglingEndpoint)
}

func TestLoadFloatTable_ReadsSparseEdgeValues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "speed.csv", "0,27.0\n2,33.5\n", false)

	table, err := LoadFloatTable(path)
	require.NoError(t, err)
	require.Len(t, table, 2)
	require.InDelta(t, 27.0, table[0], 1e-9)
	require.InDelta(t, 33.5, table[2], 1e-9)
}

func TestLoadRoadClassTable_ReadsUint8Values(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "road_class.csv", "0,1\n1,4\n", false)

	table, err := LoadRoadClassTable(path)
	require.NoError(t, err)
	require.Equal(t, uint8(1), table[0])
	require.Equal(t, uint8(4), table[1])
}
