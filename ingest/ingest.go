package ingest

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Series is one ingested measurement log: x is an order or service
// sequence number, y a duration in ms. Xs and Ys are index-aligned.
type Series struct {
	Xs []int
	Ys []float64
}

func (s Series) Len() int {
	return len(s.Xs)
}

func (s Series) Empty() bool {
	return len(s.Xs) == 0
}

// FileMetadata records where a Series came from, for diagnostics only.
// Columns is nil when the file was missing or carried no header.
type FileMetadata struct {
	Path    string
	Columns []string
}

type schemaRole int

const (
	rolePositional schemaRole = iota
	roleClient
	roleServer
	roleUnrecognized
)

// bounded prefix used for header sniffing
const sniffLen = 4096

// ReadCSV reads one measurement log into a Series. A missing file is not
// an error, it simply yields an empty Series; malformed rows are skipped
// one at a time and never abort the file.
func ReadCSV(path string) (Series, FileMetadata) {
	var s Series
	meta := FileMetadata{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return s, meta
	}
	defer f.Close()

	sample := make([]byte, sniffLen)
	n, _ := io.ReadFull(f, sample)
	header := sniffHeader(string(sample[:n]))
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return s, meta
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	role := rolePositional
	var cols map[string]int
	if header {
		rec, err := r.Read()
		if err == io.EOF {
			return s, meta
		}
		if err != nil {
			// an unreadable header line leaves the data rows positional
			if _, ok := err.(*csv.ParseError); !ok {
				return s, meta
			}
		} else {
			meta.Columns = normalize(rec)
			role, cols = resolveRole(meta.Columns)
		}
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// skip unparseable records, give up on I/O errors
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			break
		}
		x, y, ok := parseRow(rec, role, cols)
		if !ok {
			continue
		}
		s.Xs = append(s.Xs, x)
		s.Ys = append(s.Ys, y)
	}
	return s, meta
}

// sniffHeader decides whether the first non-empty line of the sampled
// prefix is a header: it is iff none of its cells parses as a number.
// Anything ambiguous degrades to "no header".
func sniffHeader(sample string) bool {
	for _, line := range strings.Split(sample, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, cell := range strings.Split(line, ",") {
			if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
				return false
			}
		}
		return true
	}
	return false
}

func normalize(rec []string) []string {
	cols := make([]string, len(rec))
	for i, c := range rec {
		cols[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return cols
}

// resolveRole maps normalized header names to the row layout. An
// unrecognized header keeps the positional two-column interpretation.
func resolveRole(cols []string) (schemaRole, map[string]int) {
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		idx[c] = i
	}
	if _, ok := idx["id"]; ok {
		if _, ok := idx["rtt_ms"]; ok {
			return roleClient, idx
		}
		if _, ok := idx["cook_ms"]; ok {
			return roleServer, idx
		}
	}
	return roleUnrecognized, idx
}

func parseRow(rec []string, role schemaRole, cols map[string]int) (int, float64, bool) {
	switch role {
	case roleClient:
		return namedPair(rec, cols, "rtt_ms")
	case roleServer:
		return namedPair(rec, cols, "cook_ms")
	default:
		if len(rec) < 2 {
			return 0, 0, false
		}
		return parsePair(rec[0], rec[1])
	}
}

func namedPair(rec []string, cols map[string]int, yname string) (int, float64, bool) {
	xi, yi := cols["id"], cols[yname]
	if xi >= len(rec) || yi >= len(rec) {
		return 0, 0, false
	}
	return parsePair(rec[xi], rec[yi])
}

// parsePair accepts float-looking identifiers such as "3.0" and
// truncates them to int; y must be a finite float.
func parsePair(xcell, ycell string) (int, float64, bool) {
	xf, err := strconv.ParseFloat(strings.TrimSpace(xcell), 64)
	if err != nil || math.IsNaN(xf) || math.IsInf(xf, 0) {
		return 0, 0, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ycell), 64)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	return int(xf), y, true
}
