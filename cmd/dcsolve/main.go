// Command dcsolve loads a persisted circuit file, netlists it, runs the DC
// fixed-point solver, and prints node voltages and voltage-source currents.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/ohmlab/dcsolver/internal/consts"
	"github.com/ohmlab/dcsolver/pkg/analysis"
	"github.com/ohmlab/dcsolver/pkg/device"
	"github.com/ohmlab/dcsolver/pkg/netlist"
	"github.com/ohmlab/dcsolver/pkg/util"
)

func main() {
	maxIter := flag.Int("maxiter", consts.DefaultMaxIter, "outer-loop iteration budget")
	tol := flag.Float64("tol", consts.DefaultTol, "convergence tolerance, volts")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: dcsolve [-maxiter N] [-tol V] <circuit.json>")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading circuit file: %v", err)
	}

	file, err := netlist.Decode(data)
	if err != nil {
		log.Fatalf("decoding circuit: %v", err)
	}

	devices := make([]device.Device, 0, len(file.Components))
	components := make([]netlist.Component, 0, len(file.Components))
	for _, spec := range file.Components {
		d, err := device.NewFromSpec(spec)
		if err != nil {
			log.Fatalf("building component %s: %v", spec.ID, err)
		}
		devices = append(devices, d)
		components = append(components, d)
	}

	wires, err := netlist.WiresFromFile(file)
	if err != nil {
		log.Fatalf("reading wires: %v", err)
	}

	if _, err := netlist.Build(components, wires); err != nil {
		log.Fatalf("building netlist: %v", err)
	}

	result, err := analysis.Solve(devices, *maxIter, *tol)
	if err != nil {
		log.Fatalf("solve failed: %v", err)
	}

	printResult(result)
}

func printResult(result analysis.Result) {
	fmt.Println("Node Voltages:")
	names := getKeys(result.NodeVoltages)
	for _, name := range names {
		fmt.Printf("  V(%s) = %s\n", name, util.FormatValueFactor(result.NodeVoltages[name], "V"))
	}

	fmt.Println("\nVoltage-Source Currents:")
	ids := getKeys(result.VSCurrents)
	for _, id := range ids {
		fmt.Printf("  I(%s) = %s\n", id, util.FormatValueFactor(result.VSCurrents[id], "A"))
	}

	fmt.Printf("\nIterations: %d\n", result.Iterations)
	if result.Converged {
		fmt.Println("Converged: yes")
	} else {
		fmt.Println("Converged: no")
	}
}

func getKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
