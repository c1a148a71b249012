package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chromatic",
	Short: "Greedy graph-coloring heuristics over DIMACS benchmarks",
	Long: `chromatic colors undirected graphs with the IDO, DSATUR, and RLF
greedy heuristics and reports colors used and wall-clock time per
algorithm on DIMACS .col benchmark instances.`,
	SilenceUsage: true,
}
