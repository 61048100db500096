package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/cardlink/internal/application/handlers"
)

type enrichFlags struct {
	graph   string
	catalog string
	output  string
}

func newEnrichCmd() *cobra.Command {
	var flags enrichFlags

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Link catalog cards to graph entities and save the enriched graph",
		Long: "Loads the knowledge graph, links every card in the catalog whose name " +
			"resolves to a graph entity, and writes the enriched graph to the output path.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrich(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.graph, "graph", "", "Input graph path (default from config)")
	cmd.Flags().StringVar(&flags.catalog, "cards", "", "Card catalog JSON path (default from config)")
	cmd.Flags().StringVar(&flags.output, "output", "", "Enriched graph output path (default from config)")

	return cmd
}

func runEnrich(cmd *cobra.Command, flags enrichFlags) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		opts := enrichOptions(d, flags)

		fmt.Printf("Loading knowledge graph from %s...\n", opts.GraphPath)

		result, err := d.EnrichHandler.Handle(ctx, opts)
		if err != nil {
			return err
		}

		for _, warning := range result.Warnings {
			fmt.Printf("WARNING: %s\n", warning)
		}

		report := result.Report
		fmt.Printf("Loaded %d triples, found %d cards\n", result.TriplesLoaded, report.CardsFound)
		fmt.Printf("Linked %d cards to entities (%d statements added)\n", report.CardsLinked, report.StatementsAdded)
		fmt.Printf("Saved %d triples to %s (run %s)\n", result.TriplesSaved, opts.OutputPath, report.RunID)

		return nil
	})
}

// enrichOptions resolves paths from flags, falling back to config values.
func enrichOptions(d *Deps, flags enrichFlags) handlers.EnrichOptions {
	opts := handlers.EnrichOptions{
		GraphPath:   flags.graph,
		CatalogPath: flags.catalog,
		OutputPath:  flags.output,
	}
	if opts.GraphPath == "" {
		opts.GraphPath = d.Config.Paths.Graph
	}
	if opts.CatalogPath == "" {
		opts.CatalogPath = d.Config.Paths.Catalog
	}
	if opts.OutputPath == "" {
		opts.OutputPath = d.Config.Paths.Output
	}
	return opts
}
