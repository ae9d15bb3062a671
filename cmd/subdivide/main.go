// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command subdivide refines a closed triangle mesh with Loop or
// Butterfly subdivision.
//
//	subdivide <input> <output> <loop|butterfly> <iterations>
//	subdivide batch <config>
//
// Meshes are read and written as Wavefront OBJ (.obj) or OFF (.off).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"cogentcore.org/subdivide/config"
	"cogentcore.org/subdivide/logx"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, logx.ErrorColor(err.Error()))
		stop()
		os.Exit(1)
	}
}

// flags are the command line options shared by all commands.
type flags struct {
	config  string
	twins   string
	stats   bool
	watch   bool
	verbose bool
	quiet   bool
}

func newRootCmd() *cobra.Command {
	fl := &flags{}
	cmd := &cobra.Command{
		Use:   "subdivide <input> <output> <loop|butterfly> <iterations>",
		Short: "Refine a closed triangle mesh with Loop or Butterfly subdivision",
		Example: "  subdivide bunny_1k.obj output.obj butterfly 2\n" +
			"  subdivide --config run.toml",
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && fl.config != "" {
				return nil
			}
			if err := cobra.ExactArgs(4)(cmd, args); err != nil {
				return err
			}
			_, _, err := parseArgs(args)
			return err
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.SetVerbosity(fl.verbose, fl.quiet)
			logx.SetDefaultLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig(cmd, fl)
			if err != nil {
				return err
			}
			if len(args) == 4 {
				scheme, iterations, _ := parseArgs(args)
				cfg.Input, cfg.Output = args[0], args[1]
				cfg.Scheme, cfg.Iterations = scheme, iterations
			}
			if err := cfg.ValidateRun(); err != nil {
				return err
			}
			r, err := newRunner(cfg)
			if err != nil {
				return err
			}
			if cfg.Watch {
				return r.watch(cmd.Context(), cfg.Job())
			}
			return r.run(cfg.Job())
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&fl.config, "config", "c", "", "read options from a .toml or .yaml file")
	pf.StringVar(&fl.twins, "twins", "index", "how opposite halfedges are matched: scan or index")
	pf.BoolVar(&fl.stats, "stats", false, "print mesh statistics")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "print debug messages")
	pf.BoolVarP(&fl.quiet, "quiet", "q", false, "only print warnings and errors")
	cmd.Flags().BoolVarP(&fl.watch, "watch", "w", false, "run again every time the input file changes")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(newBatchCmd(fl))
	return cmd
}

// parseArgs parses the scheme and iteration count of the positional
// arguments <input> <output> <scheme> <iterations>.
func parseArgs(args []string) (scheme string, iterations int, err error) {
	scheme = args[2]
	if _, err := config.SchemeOf(config.Job{Scheme: scheme}); err != nil {
		return "", 0, fmt.Errorf("invalid scheme %q: want loop or butterfly", scheme)
	}
	iterations, err = strconv.Atoi(args[3])
	if err != nil || iterations < 0 {
		return "", 0, fmt.Errorf("invalid iterations %q: want a non-negative integer", args[3])
	}
	return scheme, iterations, nil
}

// loadConfig returns the default config, overwritten by the config file
// if one is given and then by the flags that were set.
func loadConfig(cmd *cobra.Command, fl *flags) (*config.Config, error) {
	cfg := &config.Config{}
	cfg.Defaults()
	if fl.config != "" {
		var err error
		if cfg, err = config.Open(fl.config); err != nil {
			return nil, err
		}
	}
	fs := cmd.Flags()
	if fs.Changed("twins") {
		cfg.Twins = fl.twins
	}
	if fs.Changed("stats") {
		cfg.Stats = fl.stats
	}
	if fs.Lookup("watch") != nil && fs.Changed("watch") {
		cfg.Watch = fl.watch
	}
	return cfg, nil
}
