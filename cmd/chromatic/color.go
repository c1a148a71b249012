package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/dimacs"
)

var colorAlgoName string

var colorCmd = &cobra.Command{
	Use:   "color <instance.col>",
	Short: "Color one instance with one heuristic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, err := coloring.ParseAlgorithm(colorAlgoName)
		if err != nil {
			return err
		}

		g, err := dimacs.ParseFile(args[0])
		if err != nil {
			return err
		}

		opts := coloring.DefaultOptions()
		opts.Ctx = cmd.Context()
		res, err := coloring.Color(g, algo, opts)
		if err != nil {
			return err
		}
		if err = res.Validate(g); err != nil {
			return err
		}

		fmt.Printf("%s: %d vertices, %d edges, %d colors\n",
			algo, g.VertexCount(), g.EdgeCount(), res.NumColors)

		return nil
	},
}

func init() {
	colorCmd.Flags().StringVarP(&colorAlgoName, "algo", "a", "dsatur", "heuristic: ido, dsatur, or rlf")
	rootCmd.AddCommand(colorCmd)
}
