package roadnetio

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/routeforge/corridor/roadnet"
)

// LoadGraph reads verticesPath then edgesPath and builds a *roadnet.Graph,
// per spec.md §6's "vertices.csv.gz with (vertex_id, x, y)" and
// "edges.csv.gz with (edge_id, src_vertex_id, dst_vertex_id, distance)".
// Both files may be plain CSV or gzip-compressed; compression is detected
// from a ".gz" suffix on the path, not file content. Vertex ids and edge
// ids must be contiguous from 0 in file order, matching roadnet.Builder's
// own append-order id assignment: a row whose declared id doesn't match
// its position is rejected rather than silently reordered.
func LoadGraph(verticesPath, edgesPath string) (*roadnet.Graph, error) {
	b := roadnet.NewBuilder()
	if err := loadVertices(b, verticesPath); err != nil {
		return nil, err
	}
	if err := loadEdges(b, edgesPath); err != nil {
		return nil, err
	}
	return b.Build()
}

func openCSVReader(path string) (*csv.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return csv.NewReader(gz), multiCloser{gz, f}, nil
	}
	return csv.NewReader(f), f, nil
}

// multiCloser closes both a gzip.Reader and its underlying file, in that
// order.
type multiCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (c multiCloser) Close() error {
	gzErr := c.gz.Close()
	fErr := c.f.Close()
	if gzErr != nil {
		return gzErr
	}
	return fErr
}

func loadVertices(b *roadnet.Builder, path string) error {
	r, closer, err := openCSVReader(path)
	if err != nil {
		return err
	}
	defer closer.Close()
	r.FieldsPerRecord = 3

	row := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &RowError{File: path, Row: row, Err: err}
		}

		vertexID, errID := strconv.Atoi(strings.TrimSpace(rec[0]))
		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[1]), 32)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[2]), 32)
		if err := firstErr(errID, errX, errY); err != nil {
			return &RowError{File: path, Row: row, Err: err}
		}

		id := b.AddVertex(float32(x), float32(y))
		if int(id) != vertexID {
			return &RowError{File: path, Row: row, Err: errNonContiguousId(vertexID, int(id))}
		}
		row++
	}
	if row == 0 {
		return ErrEmptyVerticesFile
	}
	return nil
}

func loadEdges(b *roadnet.Builder, path string) error {
	r, closer, err := openCSVReader(path)
	if err != nil {
		return err
	}
	defer closer.Close()
	r.FieldsPerRecord = 4

	row := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &RowError{File: path, Row: row, Err: err}
		}

		edgeID, errID := strconv.Atoi(strings.TrimSpace(rec[0]))
		src, errSrc := strconv.Atoi(strings.TrimSpace(rec[1]))
		dst, errDst := strconv.Atoi(strings.TrimSpace(rec[2]))
		distance, errDist := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
		if err := firstErr(errID, errSrc, errDst, errDist); err != nil {
			return &RowError{File: path, Row: row, Err: err}
		}

		id := b.AddEdge(roadnet.VertexId(src), roadnet.VertexId(dst), distance)
		if int(id) != edgeID {
			return &RowError{File: path, Row: row, Err: errNonContiguousId(edgeID, int(id))}
		}
		row++
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func errNonContiguousId(declared, assigned int) error {
	return errors.New(strconv.Itoa(declared) + " is not contiguous: expected " + strconv.Itoa(assigned))
}
