// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cogentcore.org/subdivide/config"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBatchCmd(fl *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <config>",
		Short: "Run every job listed in a config file",
		Long: "Run every job listed in the Jobs of a .toml or .yaml config file.\n" +
			"Jobs run concurrently, each on its own mesh, up to Concurrency at once.\n" +
			"Jobs with no Scheme use the Scheme of the config.",
		Example: "  subdivide batch jobs.toml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			fl.config = args[0]
			cfg, err := loadConfig(cmd, fl)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runBatch(cmd.Context(), args[0], cfg)
		},
	}
}

// runBatch runs the jobs of the config. After the first failure, jobs
// that have not started yet are skipped.
func runBatch(ctx context.Context, file string, cfg *config.Config) error {
	jobs := cfg.BatchJobs()
	if len(jobs) == 0 {
		return fmt.Errorf("%s has no jobs", file)
	}
	r, err := newRunner(cfg)
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.run(job); err != nil {
				return fmt.Errorf("job %d: %w", i+1, err)
			}
			return nil
		})
	}
	return g.Wait()
}
