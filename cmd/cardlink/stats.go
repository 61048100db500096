package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/cardlink/internal/domain/services"
)

type statsFlags struct {
	graph string
}

func newStatsCmd() *cobra.Command {
	var flags statsFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show triple and named-entity counts for a graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.graph, "graph", "", "Graph path (default from config)")

	return cmd
}

func runStats(cmd *cobra.Command, flags statsFlags) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		path := flags.graph
		if path == "" {
			path = d.Config.Paths.Graph
		}

		g, err := d.Store.Load(ctx, path)
		if err != nil {
			return fmt.Errorf("loading graph: %w", err)
		}

		index := services.BuildIndex(g, services.LastWriteWins)

		fmt.Printf("Graph: %s\n", path)
		fmt.Printf("Triples: %d\n", g.Len())
		fmt.Printf("Indexed name keys: %d\n", index.Len())

		return nil
	})
}
