package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/routeforge/corridor/batch"
	"github.com/routeforge/corridor/config"
	"github.com/routeforge/corridor/corridorio"
	"github.com/routeforge/corridor/roadnetio"
	"github.com/routeforge/corridor/search"
)

// newRunCommand builds the "run" subcommand: load the graph once, run
// every query in the given batch file concurrently per spec.md §5, and
// write the resulting Responses as a JSON array.
func newRunCommand() *cobra.Command {
	var queriesPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a batch of queries against the configured graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if queriesPath == "" {
				return fmt.Errorf("--queries is required")
			}

			cliCtx := GetCLIContext(cmd)
			cfg := cliCtx.Config
			logger := cliCtx.Logger

			jobs, err := loadJobs(queriesPath)
			if err != nil {
				return fmt.Errorf("loading queries: %w", err)
			}

			graph, err := roadnetio.LoadGraph(cfg.Graph.VerticesPath, cfg.Graph.EdgesPath)
			if err != nil {
				return fmt.Errorf("loading graph: %w", err)
			}
			aux, err := loadAuxiliaryTables(cfg.Graph)
			if err != nil {
				return fmt.Errorf("loading auxiliary tables: %w", err)
			}
			logger.Info("graph loaded",
				zap.Int("vertices", graph.VertexCount()),
				zap.Int("edges", graph.EdgeCount()),
				zap.Int("jobs", len(jobs)),
			)

			factory := buildInstanceFactory(graph, aux, cfg)
			term := terminationFromConfig(cfg.Termination)
			runner := batch.NewRunner(factory, cfg.Worker.Concurrency, term, logger)

			results := runner.Run(cmd.Context(), jobs)
			return writeResults(outputPath, results)
		},
	}

	cmd.Flags().StringVar(&queriesPath, "queries", "", "path to a JSON file containing an array of queries (required)")
	cmd.Flags().StringVar(&outputPath, "output", "-", "output path for the JSON array of responses, or \"-\" for stdout")
	return cmd
}

// terminationFromConfig builds the TerminationModel every query in the
// batch runs with; queries carry no termination settings of their own.
func terminationFromConfig(tc config.TerminationConfig) search.TerminationModel {
	return search.CombinedTermination{Models: []search.TerminationModel{
		search.QueryRuntimeLimit{Limit: tc.QueryRuntimeLimit, Frequency: tc.RuntimeCheckEveryN},
		search.IterationsLimit{Limit: tc.IterationsLimit},
		search.SolutionSizeLimit{Limit: tc.SolutionSizeLimit},
	}}
}

// loadJobs reads a JSON array of corridorio.Query from path and assigns
// each a 0-based Job ID matching its position in the array.
func loadJobs(path string) ([]batch.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var queries []corridorio.Query
	if err := json.Unmarshal(data, &queries); err != nil {
		return nil, fmt.Errorf("decoding queries JSON: %w", err)
	}
	jobs := make([]batch.Job, len(queries))
	for i, q := range queries {
		jobs[i] = batch.Job{ID: i, Query: q}
	}
	return jobs, nil
}

// writeResults marshals results as a JSON array to outputPath, or stdout
// if outputPath is "-".
func writeResults(outputPath string, results []batch.JobResult) error {
	type jobOutput struct {
		ID       int                 `json:"id"`
		Response corridorio.Response `json:"response,omitempty"`
		Error    string              `json:"error,omitempty"`
	}
	out := make([]jobOutput, len(results))
	for i, r := range results {
		o := jobOutput{ID: r.ID, Response: r.Response}
		if r.Err != nil {
			o.Error = r.Err.Error()
		}
		out[i] = o
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if outputPath == "" || outputPath == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(outputPath, append(data, '\n'), 0o644)
}
