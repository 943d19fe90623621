package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/routeforge/corridor/roadnetio"
)

// newValidateCommand builds the "validate" subcommand: load the config
// file, parse the graph files it points at, and report the result
// without running any search. Intended for CI/deploy-time sanity checks.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "validate a config file and the graph files it references",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx := GetCLIContext(cmd)
			cfg := cliCtx.Config
			logger := cliCtx.Logger

			logger.Info("validating graph files",
				zap.String("vertices_path", cfg.Graph.VerticesPath),
				zap.String("edges_path", cfg.Graph.EdgesPath),
			)

			graph, err := roadnetio.LoadGraph(cfg.Graph.VerticesPath, cfg.Graph.EdgesPath)
			if err != nil {
				return fmt.Errorf("graph validation failed: %w", err)
			}

			if _, err := loadAuxiliaryTables(cfg.Graph); err != nil {
				return fmt.Errorf("auxiliary table validation failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "config OK: %d vertices, %d edges\n", graph.VertexCount(), graph.EdgeCount())
			return nil
		},
	}
}
