package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunRejectsUnknownScenario(t *testing.T) {
	dir := t.TempDir()
	figdir := filepath.Join(dir, "figures")
	err := run([]string{"weird"}, dir, figdir, io.Discard)
	if err == nil {
		t.Fatal("run(weird) expected error")
	}
	if !strings.Contains(err.Error(), "baseline exp impaired uniform") {
		t.Fatalf("error %q does not list valid scenarios", err)
	}
	if _, serr := os.Stat(figdir); !os.IsNotExist(serr) {
		t.Fatalf("figures dir created for invalid scenario: %v", serr)
	}
}

func TestRunDefaultsToBaseline(t *testing.T) {
	dir := t.TempDir()
	figdir := filepath.Join(dir, "figures")
	var out bytes.Buffer
	if err := run(nil, dir, figdir, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	combined := filepath.Join(figdir, "rtt_combined_baseline.png")
	if _, err := os.Stat(combined); err != nil {
		t.Fatalf("stat combined: %v", err)
	}
	if _, err := os.Stat(filepath.Join(figdir, "rtt_box_baseline.png")); !os.IsNotExist(err) {
		t.Fatalf("boxplot written without client data: %v", err)
	}
	if !strings.Contains(out.String(), combined) {
		t.Fatalf("stdout %q does not announce %s", out.String(), combined)
	}
}

func TestRunWritesBoxplotWithClientData(t *testing.T) {
	dir := t.TempDir()
	figdir := filepath.Join(dir, "figures")
	csv := filepath.Join(dir, "rtt_gbn_uniform_client.csv")
	if err := os.WriteFile(csv, []byte("1,10.5\n2,20.0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out bytes.Buffer
	if err := run([]string{"uniform"}, dir, figdir, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	box := filepath.Join(figdir, "rtt_box_uniform.png")
	if _, err := os.Stat(box); err != nil {
		t.Fatalf("stat box: %v", err)
	}
	if !strings.Contains(out.String(), box) {
		t.Fatalf("stdout %q does not announce %s", out.String(), box)
	}
}
