// Command lvsearch solves the terrain and valley route puzzles.
//
//	lvsearch terrain [-input FILE] [-timeout D] [-metrics]
//	lvsearch valley  [-input FILE] [-timeout D] [-metrics]
//
// Input is read from FILE, or from stdin when -input is empty. With -metrics
// the Prometheus metrics gathered while solving are printed after the answers
// in the text exposition format.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/terrain"
	"github.com/katalvlaran/lvsearch/valley"
)

const usage = "usage: lvsearch <terrain|valley> [-input FILE] [-timeout D] [-metrics]"

var errUsage = errors.New(usage)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvsearch: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// solver reads one puzzle from r and writes its answers to out.
type solver func(ctx context.Context, r io.Reader, out io.Writer, m *metrics.SearchMetrics) error

var solvers = map[string]solver{
	"terrain": solveTerrain,
	"valley":  solveValley,
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	name, rest := args[0], args[1:]
	solve, ok := solvers[name]
	if !ok {
		return fmt.Errorf("unknown command %q\n%s", name, usage)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	input := fs.String("input", "", "puzzle input file (default stdin)")
	timeout := fs.Duration("timeout", 0, "abort the search after this long (0 = no limit)")
	showMetrics := fs.Bool("metrics", false, "print Prometheus metrics after solving")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	r := stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	if err := solve(ctx, r, stdout, metrics.New(reg)); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if *showMetrics {
		return writeMetrics(stdout, reg)
	}
	return nil
}

func solveTerrain(ctx context.Context, r io.Reader, out io.Writer, m *metrics.SearchMetrics) error {
	land, err := terrain.Parse(r)
	if err != nil {
		return err
	}
	log.Printf("terrain: %dx%d map, start %v, destination %v", land.Width(), land.Height(), land.Start, land.Dest)

	start := time.Now()
	up, err := land.Traverse(dijkstra.WithContext(ctx), m.DijkstraOption())
	m.Observe(metrics.Dijkstra, len(up), time.Since(start), err)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Distance to destination: %d\n", len(up))

	start = time.Now()
	down, err := land.TraverseBackwards(dijkstra.WithContext(ctx), m.DijkstraOption())
	m.Observe(metrics.Dijkstra, len(down), time.Since(start), err)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Distance from best starting point: %d\n", len(down))

	return nil
}

func solveValley(ctx context.Context, r io.Reader, out io.Writer, m *metrics.SearchMetrics) error {
	v, err := valley.Parse(r)
	if err != nil {
		return err
	}
	log.Printf("valley: %dx%d basin, blizzards repeat every %d minutes", v.Width(), v.Height(), v.Period())

	// Each leg is a separate search and is observed on its own.
	var legs [3]int
	at := valley.Node{Pos: v.Source}
	for i, target := range v.Route() {
		start := time.Now()
		path, err := v.Cross(at, target, bfs.WithContext(ctx), m.BFSOption())
		m.Observe(metrics.BFS, len(path)-1, time.Since(start), err)
		if err != nil {
			return fmt.Errorf("leg %d: %w", i+1, err)
		}
		at = path[len(path)-1]
		legs[i] = len(path) - 1
	}
	total := legs[0] + legs[1] + legs[2]

	fmt.Fprintf(out, "First traversal: %d\n", legs[0])
	fmt.Fprintf(out, "Back and forth: %d\n", total)

	return nil
}

// writeMetrics prints every gathered metric family in text format.
func writeMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}
