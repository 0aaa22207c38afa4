package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"bistroplot/common"
	"bistroplot/figures"
	"bistroplot/ingest"
	"bistroplot/scenario"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [scenario]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "scenario:", strings.Join(scenario.Names(), " | "))
	}
	flag.Parse()

	if err := run(flag.Args(), scenario.ResultsDir, scenario.FiguresDir, os.Stdout); err != nil {
		fmt.Println("[ERR]", err)
		os.Exit(1)
	}
}

// run does the whole load-and-render pass. An invalid scenario fails
// before any file is read or written.
func run(args []string, resultsDir, figuresDir string, stdout io.Writer) error {
	arg := string(scenario.Baseline)
	if len(args) > 0 {
		arg = args[0]
	}
	sc, err := scenario.Parse(arg)
	if err != nil {
		return fmt.Errorf("scenario must be one of: %s", strings.Join(scenario.Names(), " "))
	}

	bundle, err := scenario.Load(resultsDir, sc)
	if err != nil {
		return err
	}
	logSeries("gbn client", bundle.GbnClient)
	logSeries("gbn server", bundle.GbnServer)
	logSeries("sr client", bundle.SrClient)
	logSeries("sr server", bundle.SrServer)
	for _, m := range bundle.Sources {
		if len(m.Columns) > 0 {
			log.Println("columns", m.Path, m.Columns)
		}
	}

	if err := figures.EnsureDir(figuresDir); err != nil {
		return err
	}
	combined, err := figures.Combined(bundle, sc, figuresDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "[OK] wrote", combined)

	boxname, ok, err := figures.Box(bundle, sc, figuresDir)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(stdout, "[OK] wrote", boxname)
	}
	return nil
}

func logSeries(name string, s ingest.Series) {
	sum := common.Summarize(s.Ys)
	log.Printf("%s: n=%d mean=%.2fms median=%.2fms p95=%.2fms", name, sum.N, sum.Mean, sum.Median, sum.P95)
}
