// Command sprout runs, validates, and converts movement graphs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phanxgames/sprout"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)
	root := &cobra.Command{
		Use:          "sprout",
		Short:        "Run and edit node graphs that script a platformer character",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(
		newRunCmd(&logLevel, &logFormat),
		newCheckCmd(),
		newConvertCmd(),
	)
	return root
}

func newRunCmd(logLevel, logFormat *string) *cobra.Command {
	var (
		graphPath  string
		scriptPath string
		tps        int
		speed      float64
		jump       float64
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and play a graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(*logLevel, *logFormat, cmd.ErrOrStderr())

			graph := sprout.NewPlatformerGraph(speed, jump)
			if graphPath != "" {
				g, err := sprout.LoadGraphFile(graphPath)
				if err != nil {
					return err
				}
				graph = g
			}

			var script *sprout.InputScript
			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				if script, err = sprout.LoadInputScript(data); err != nil {
					return err
				}
			}

			level := sprout.DefaultLevel()
			game := sprout.NewGame(sprout.GameConfig{
				Graph:  graph,
				Level:  level,
				Spawn:  sprout.Vec2{X: 40, Y: 40},
				Body:   sprout.DefaultBody,
				Script: script,
				Logger: logger,
				Debug:  *logLevel == "debug",
			})
			logger.Info("Starting game.", "nodes", len(graph.Nodes()), "connections", len(graph.Connections()),
				"entries", len(game.Processor.Entries()))
			return sprout.Run(game, sprout.RunConfig{
				Title:  "sprout",
				Width:  int(level.Bounds.Width) * 2,
				Height: int(level.Bounds.Height) * 2,
				TPS:    tps,
			})
		},
	}
	cmd.Flags().StringVar(&graphPath, "graph", "", "graph file (.hcl, .json, .yaml); defaults to the built-in platformer graph")
	cmd.Flags().StringVar(&scriptPath, "script", "", "JSON input script; the game exits when it finishes")
	cmd.Flags().IntVar(&tps, "tps", 60, "ticks per second")
	cmd.Flags().Float64Var(&speed, "speed", 240, "run speed of the built-in graph")
	cmd.Flags().Float64Var(&jump, "jump", 300, "jump impulse of the built-in graph")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Load a graph and report its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := sprout.LoadGraphFile(args[0])
			if err != nil {
				return err
			}
			counts := make(map[sprout.Kind]int)
			for _, n := range g.Nodes() {
				counts[n.Kind]++
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d nodes, %d connections\n", filepath.Base(args[0]), len(g.Nodes()), len(g.Connections()))
			for k := sprout.KindConstant; k.Valid(); k++ {
				if counts[k] > 0 {
					fmt.Fprintf(out, "  %-12s %d\n", k.Tag(), counts[k])
				}
			}
			if counts[sprout.KindUpdateTick] == 0 {
				fmt.Fprintln(out, "warning: no update_tick node; the graph will never run")
			}
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a graph between HCL, JSON, and YAML",
		Long:  "Convert reads any supported graph file and writes it in the format implied by the output extension (.json, .yaml, .yml).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := sprout.LoadGraphFile(args[0])
			if err != nil {
				return err
			}
			if err := sprout.SaveGraphFile(args[1], g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
			return nil
		},
	}
}
