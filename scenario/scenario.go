package scenario

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"bistroplot/ingest"
)

// Scenario selects which file set to load.
type Scenario string

const (
	Baseline Scenario = "baseline"
	Impaired Scenario = "impaired"
	Uniform  Scenario = "uniform"
	Exp      Scenario = "exp"
)

// Fixed input and output locations, relative to the working directory.
const (
	ResultsDir = "results"
	FiguresDir = "results/figures"
)

var valid = map[Scenario]bool{
	Baseline: true,
	Impaired: true,
	Uniform:  true,
	Exp:      true,
}

// Parse validates a user-supplied scenario name.
func Parse(s string) (Scenario, error) {
	sc := Scenario(strings.ToLower(strings.TrimSpace(s)))
	if !valid[sc] {
		return "", fmt.Errorf("unknown scenario %q, valid: %s", s, strings.Join(Names(), " "))
	}
	return sc, nil
}

// Names returns the valid scenario names, sorted for usage messages.
func Names() []string {
	names := make([]string, 0, len(valid))
	for sc := range valid {
		names = append(names, string(sc))
	}
	sort.Strings(names)
	return names
}

func (sc Scenario) clientFile(proto string) string {
	return "rtt_" + proto + "_" + string(sc) + "_client.csv"
}

func (sc Scenario) serverFile(proto string) string {
	return "cook_" + proto + "_" + string(sc) + "_server.csv"
}

// Bundle holds the four series of one scenario run. The role set is
// closed: the renderer addresses each field explicitly.
type Bundle struct {
	GbnClient ingest.Series
	GbnServer ingest.Series
	SrClient  ingest.Series
	SrServer  ingest.Series

	// Sources lists the ingested files in load order, for diagnostics.
	Sources []ingest.FileMetadata
}

// Load ingests the four expected files for sc under dir. An invalid
// Scenario is rejected before any file is touched; missing files yield
// empty series.
func Load(dir string, sc Scenario) (Bundle, error) {
	if !valid[sc] {
		return Bundle{}, fmt.Errorf("unknown scenario %q, valid: %s", sc, strings.Join(Names(), " "))
	}
	var b Bundle
	var m ingest.FileMetadata

	b.GbnClient, m = ingest.ReadCSV(filepath.Join(dir, sc.clientFile("gbn")))
	b.Sources = append(b.Sources, m)
	b.GbnServer, m = ingest.ReadCSV(filepath.Join(dir, sc.serverFile("gbn")))
	b.Sources = append(b.Sources, m)
	b.SrClient, m = ingest.ReadCSV(filepath.Join(dir, sc.clientFile("sr")))
	b.Sources = append(b.Sources, m)
	b.SrServer, m = ingest.ReadCSV(filepath.Join(dir, sc.serverFile("sr")))
	b.Sources = append(b.Sources, m)
	return b, nil
}
