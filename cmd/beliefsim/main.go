// Command beliefsim runs the belief-spread simulator: it loads behaviours,
// beliefs, agents, and performance relationships from disk, runs the
// simulation across a tick range, and writes the final agent state back
// out.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/beliefspread/beliefsim/internal/config"
	"github.com/beliefspread/beliefsim/internal/graph"
	"github.com/beliefspread/beliefsim/internal/logging"
	"github.com/beliefspread/beliefsim/internal/pathutil"
	"github.com/beliefspread/beliefsim/internal/runner"
	"github.com/beliefspread/beliefsim/internal/simerr"
	"github.com/beliefspread/beliefsim/internal/visualization"
	"github.com/beliefspread/beliefsim/internal/wire"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "beliefsim",
		Short:         "Simulate the co-evolution of beliefs and behaviours across a social network",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().IntP("start", "s", 1, "first tick to simulate (inclusive)")
	cmd.Flags().IntP("end", "e", 1, "last tick to simulate (inclusive)")
	cmd.Flags().StringP("behaviours", "b", "behaviours.json", "input behaviours file")
	cmd.Flags().StringP("beliefs", "c", "beliefs.json", "input beliefs file")
	cmd.Flags().StringP("agents", "a", "agents.json.zst", "input agents file (zstd-compressed)")
	cmd.Flags().StringP("performance-relationships", "p", "prs.json", "input performance relationships file")
	cmd.Flags().StringP("output", "o", "output.json.zst", "output agents file (zstd-compressed)")
	cmd.Flags().String("config", "", "optional path to a YAML config file")
	cmd.Flags().Int64("seed", 0, "optional RNG seed override")
	cmd.Flags().String("dot", "", "optional path to write the built graph as Graphviz DOT, before running")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)

	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")
	behavioursPath, _ := cmd.Flags().GetString("behaviours")
	beliefsPath, _ := cmd.Flags().GetString("beliefs")
	agentsPath, _ := cmd.Flags().GetString("agents")
	prsPath, _ := cmd.Flags().GetString("performance-relationships")
	outputPath, _ := cmd.Flags().GetString("output")
	dotPath, _ := cmd.Flags().GetString("dot")

	if err := validateInputPaths(behavioursPath, beliefsPath, agentsPath, prsPath, outputPath, dotPath); err != nil {
		return err
	}

	behaviours, err := wire.ReadBehaviours(behavioursPath)
	if err != nil {
		return err
	}
	beliefs, err := wire.ReadBeliefs(beliefsPath)
	if err != nil {
		return err
	}
	agents, err := wire.ReadAgents(agentsPath)
	if err != nil {
		return err
	}
	prs, err := wire.ReadPerformanceRelationships(prsPath)
	if err != nil {
		return err
	}

	g, warnings, err := graph.Build(behaviours, beliefs, agents, prs)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn(w.Error())
	}

	if dotPath != "" {
		if err := os.WriteFile(dotPath, []byte(visualization.RenderDOT(g)), 0644); err != nil {
			return simerr.IO(dotPath, err)
		}
	}

	r := runner.New(g, start, end, cfg.RNG.Seed, logger)
	if err := r.Run(); err != nil {
		return err
	}

	specs := wire.AgentsToSpecs(g.Agents)
	if err := wire.WriteAgents(outputPath, specs); err != nil {
		return err
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.SimConfig, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.SimConfig
	var err error
	if configPath != "" {
		if verr := validateInputPaths(configPath); verr != nil {
			return nil, verr
		}
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		cfg.RNG.Seed = seed
	}
	if cfg.RNG.Seed == 0 {
		cfg.RNG.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// validateInputPaths confines every non-empty path in paths to the current
// working directory tree, rejecting flags that point outside it (including
// via a symlink) before the path ever reaches a Read/Write call.
func validateInputPaths(paths ...string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return simerr.Internal("cannot determine working directory: " + err.Error())
	}
	allowed := []string{cwd}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := pathutil.ValidatePath(p, allowed); err != nil {
			return simerr.IO(p, err)
		}
	}
	return nil
}

func exitCodeFor(err error) int {
	return simerr.ExitCode(err)
}
