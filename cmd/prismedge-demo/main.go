// Command prismedge-demo builds a synthetic subdivision, constructs its
// edge network, and prints a handful of sample crossing-point queries.
// It is the only place in this module that touches the filesystem.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cross3d/prismedge/pkg/cross3d"
	"github.com/cross3d/prismedge/pkg/fixtures"
)

func main() {
	tunablesPath := flag.String("tunables", "", "path to a tunables Lisp script (optional)")
	columns := flag.Int("columns", 4, "grid columns")
	layers := flag.Int("layers", 3, "grid layers")
	verbose := flag.Bool("verbose", false, "run the invariant checker and print every finding")
	flag.Parse()

	params := cross3d.DefaultParams()
	if *tunablesPath != "" {
		source, err := os.ReadFile(*tunablesPath)
		if err != nil {
			log.Fatalf("reading tunables script: %v", err)
		}
		params, err = cross3d.LoadParams(string(source))
		if err != nil {
			log.Fatalf("loading tunables: %v", err)
		}
	}

	view := fixtures.Grid(fixtures.GridParams{
		Columns:     *columns,
		Layers:      *layers,
		Depth:       0,
		CellWidth:   1000,
		LayerHeight: 1000,
		Expanding:   true,
	})

	network := cross3d.Construct(view, params)

	fmt.Printf("built a %d x %d grid network (inclination threshold %.1f deg, bend suppress %d um^2)\n",
		*columns, *layers, params.InclinationThresholdDeg, params.BendSuppressSq)

	for col := 0; col+1 < *columns; col++ {
		before := cross3d.CellIndex(col)
		after := cross3d.CellIndex(col + 1)
		for _, z := range []int64{0, 500, 1000} {
			p := network.GetCellEdgeLocation(before, after, z)
			fmt.Printf("  crossing between cell %d and %d at z=%d: (%d, %d)\n", before, after, z, p.X, p.Y)
		}
	}

	if *verbose {
		findings := cross3d.CheckInvariants(view, network)
		if len(findings) == 0 {
			fmt.Println("invariant check: clean")
			return
		}
		fmt.Printf("invariant check: %d finding(s)\n", len(findings))
		for _, f := range findings {
			fmt.Printf("  [%s] cell %d: %s (%s)\n", f.Property, f.Cell, f.Message, f.Severity)
		}
	}
}
