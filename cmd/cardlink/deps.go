package main

import (
	"fmt"
	"os"

	"github.com/ersonp/cardlink/internal/application/handlers"
	"github.com/ersonp/cardlink/internal/domain/ports"
	"github.com/ersonp/cardlink/internal/domain/services"
	"github.com/ersonp/cardlink/internal/infrastructure/config"
	"github.com/ersonp/cardlink/internal/infrastructure/graphstore/ntriples"
	"github.com/ersonp/cardlink/internal/infrastructure/parsers"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config        *config.Config
	Store         ports.GraphStore
	EnrichHandler *handlers.EnrichHandler
}

// withDeps loads config and builds dependencies, then calls the provided
// function.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store := ntriples.NewStore()
	service := services.NewEnrichService(cfg.Match.Threshold, printProgress)
	handler := handlers.NewEnrichHandler(store, parsers.NewCatalogParser(), service)

	return fn(&Deps{
		Config:        cfg,
		Store:         store,
		EnrichHandler: handler,
	})
}

// printProgress reports linking progress every ProgressInterval cards.
func printProgress(linked int) {
	if linked%ProgressInterval == 0 {
		fmt.Printf("  linked %d cards...\n", linked)
	}
}
