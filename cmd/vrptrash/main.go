// Command vrptrash solves a CVRPTW-D problem instance: a fleet of
// vehicles collecting waste containers under capacity and time-window
// constraints, with intermediate dump visits (spec §1, §6).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/trashroute/vrptrash/catalog"
	"github.com/trashroute/vrptrash/construct"
	"github.com/trashroute/vrptrash/input"
	"github.com/trashroute/vrptrash/metrics"
	"github.com/trashroute/vrptrash/neighborhood"
	"github.com/trashroute/vrptrash/output"
	"github.com/trashroute/vrptrash/routingengine"
	"github.com/trashroute/vrptrash/tabu"
	"github.com/trashroute/vrptrash/twc"
)

func main() {
	base := flag.String("base", ".", "directory containing the four problem files per problem base name")
	checkData := flag.Bool("checkData", false, "validate input files only, do not solve")
	calculateTM := flag.Bool("calculateTM", false, "write the travel-time matrix using the routing engine, do not solve")
	osrmURL := flag.String("osrmURL", "http://localhost:5000", "OSRM base URL used only with --calculateTM")
	klog.InitFlags(nil)
	flag.Parse()

	problems := flag.Args()
	if len(problems) == 0 {
		fmt.Fprintln(os.Stderr, "vrptrash: at least one problem base name is required")
		os.Exit(1)
	}

	for _, name := range problems {
		if err := runProblem(*base, name, *checkData, *calculateTM, *osrmURL); err != nil {
			fmt.Fprintf(os.Stderr, "vrptrash: %s: %v\n", name, err)
			os.Exit(exitCode(err))
		}
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, input.ErrMalformedLine), errors.Is(err, input.ErrSemanticInvalid):
		return 2
	case errors.Is(err, routingengine.ErrUnavailable):
		return 3
	default:
		return 1
	}
}

func runProblem(baseDir, name string, checkData, calculateTM bool, osrmURL string) error {
	containersPath := filepath.Join(baseDir, name+".containers.txt")
	otherlocsPath := filepath.Join(baseDir, name+".otherlocs.txt")
	vehiclesPath := filepath.Join(baseDir, name+".vehicles.txt")
	matrixPath := filepath.Join(baseDir, name+".dmatrix-time.txt")

	containers, err := input.LoadContainers(containersPath)
	if err != nil {
		return err
	}
	otherlocs, err := input.LoadOtherLocs(otherlocsPath)
	if err != nil {
		return err
	}
	cat, err := input.BuildCatalog(containers, otherlocs)
	if err != nil {
		return err
	}
	vehicles, err := input.LoadVehicles(vehiclesPath, cat)
	if err != nil {
		return err
	}
	klog.V(2).InfoS("loaded problem", "name", name, "nodes", cat.N(), "vehicles", len(vehicles))

	if calculateTM {
		return writeMatrix(matrixPath, cat, osrmURL)
	}

	mat, err := input.LoadMatrix(matrixPath, cat)
	if err != nil {
		return err
	}

	if checkData {
		klog.InfoS("data OK", "name", name)
		return nil
	}

	oracle := twc.Build(cat, mat)
	start, err := construct.Build(cat, mat, oracle, vehicles)
	if err != nil {
		return err
	}
	klog.V(2).InfoS("initial solution built", "cost", start.Cost(), "unassigned", len(start.Unassigned()))

	gen := neighborhood.New(oracle)
	driver := tabu.NewDriver(gen, tabu.DefaultParams(), metrics.NewPrometheusRecorder())
	best, bestCost := driver.Run(context.Background(), start)
	klog.V(2).InfoS("search finished", "cost", bestCost, "unassigned", len(best.Unassigned()))

	return output.WriteVisits(os.Stdout, cat, best)
}

// writeMatrix queries the routing engine for every ordered pair of
// distinct nodes and writes a <base>.dmatrix-time.txt file (spec §6).
// Pairs the engine fails to resolve are simply omitted, leaving them
// unreachable per §6's "unknown pairs are treated as unreachable".
func writeMatrix(matrixPath string, cat *catalog.Catalog, osrmURL string) error {
	client := routingengine.NewOSRMClient(osrmURL)

	f, err := os.Create(matrixPath)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", routingengine.ErrUnavailable, matrixPath, err)
	}
	defer f.Close()

	ctx := context.Background()
	n := cat.N()
	var failures int
	for i := 0; i < n; i++ {
		ni := cat.Node(i)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			nj := cat.Node(j)
			d, err := client.Duration(ctx, routingengine.Point{Lon: ni.X, Lat: ni.Y}, routingengine.Point{Lon: nj.X, Lat: nj.Y})
			if err != nil {
				failures++
				continue
			}
			if _, err := fmt.Fprintf(f, "%s\t%s\t%g\n", ni.ID, nj.ID, d.Seconds()); err != nil {
				return err
			}
		}
	}
	klog.InfoS("matrix written", "path", matrixPath, "nodes", n, "unresolvedPairs", failures)
	return nil
}
