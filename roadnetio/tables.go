package roadnetio

import (
	"io"
	"strconv"
	"strings"

	"github.com/routeforge/corridor/roadnet"
)

// LoadFloatTable reads a two-column (edge_id, value) CSV into a
// map[roadnet.EdgeId]float64, for the per-edge auxiliary tables spec.md §6
// describes as "likewise external": speed-by-edge, grade-by-edge,
// headings-by-edge. Rows are not required to be contiguous or sorted,
// unlike the primary edges/vertices files — an auxiliary table may cover
// only a subset of edges.
func LoadFloatTable(path string) (map[roadnet.EdgeId]float64, error) {
	r, closer, err := openCSVReader(path)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	r.FieldsPerRecord = 2

	table := make(map[roadnet.EdgeId]float64)
	row := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &RowError{File: path, Row: row, Err: err}
		}
		edgeID, errID := strconv.Atoi(strings.TrimSpace(rec[0]))
		value, errVal := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err := firstErr(errID, errVal); err != nil {
			return nil, &RowError{File: path, Row: row, Err: err}
		}
		table[roadnet.EdgeId(edgeID)] = value
		row++
	}
	return table, nil
}

// LoadRoadClassTable reads a two-column (edge_id, road_class_id) CSV into
// a map[roadnet.EdgeId]uint8, matching spec.md §6's "road-class-by-edge
// (dense u8 plus a category->id mapping)" — the category->id mapping
// itself is a deployment concern (a fixed lookup table) outside this
// loader's job of producing the dense per-edge ids.
func LoadRoadClassTable(path string) (map[roadnet.EdgeId]uint8, error) {
	r, closer, err := openCSVReader(path)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	r.FieldsPerRecord = 2

	table := make(map[roadnet.EdgeId]uint8)
	row := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &RowError{File: path, Row: row, Err: err}
		}
		edgeID, errID := strconv.Atoi(strings.TrimSpace(rec[0]))
		classID, errClass := strconv.ParseUint(strings.TrimSpace(rec[1]), 10, 8)
		if err := firstErr(errID, errClass); err != nil {
			return nil, &RowError{File: path, Row: row, Err: err}
		}
		table[roadnet.EdgeId(edgeID)] = uint8(classID)
		row++
	}
	return table, nil
}
