// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"cogentcore.org/subdivide/config"
	"cogentcore.org/subdivide/halfedge"
	"cogentcore.org/subdivide/logx"
	"cogentcore.org/subdivide/meshio"
)

// runner runs subdivision jobs with shared options.
// It is safe to call run from several goroutines.
type runner struct {
	twins halfedge.TwinStrategy
	stats bool
}

func newRunner(cfg *config.Config) (*runner, error) {
	twins, err := cfg.TwinStrategy()
	if err != nil {
		return nil, err
	}
	return &runner{twins: twins, stats: cfg.Stats}, nil
}

// run loads the input mesh of the job, subdivides it and saves it.
func (r *runner) run(job config.Job) error {
	scheme, err := config.SchemeOf(job)
	if err != nil {
		return err
	}
	start := time.Now()
	m, err := meshio.Open(job.Input, r.twins)
	if err != nil {
		return fmt.Errorf("mesh file %q could not be loaded: %w", job.Input, err)
	}
	slog.Debug("loaded mesh", "file", job.Input, "vertices", m.NumVertices(), "faces", m.NumFaces())
	if r.stats {
		printStats(job.Input, m.Stats())
	}
	if err := m.SubdivideN(scheme, job.Iterations); err != nil {
		return fmt.Errorf("%s: %w", job.Input, err)
	}
	if err := meshio.Save(job.Output, m); err != nil {
		return fmt.Errorf("mesh file %q could not be saved: %w", job.Output, err)
	}
	logx.PrintlnInfo(logx.SuccessColor(fmt.Sprintf("%s -> %s", job.Input, job.Output)),
		fmt.Sprintf(" (%v x%d, %d faces, %v)", scheme, job.Iterations, m.NumFaces(), time.Since(start).Round(time.Millisecond)))
	if r.stats {
		printStats(job.Output, m.Stats())
	}
	return nil
}

// printStats prints mesh statistics at the info level.
func printStats(name string, st halfedge.Stats) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", logx.TitleColor(name))
	fmt.Fprintf(&b, "  vertices %d  edges %d  faces %d  euler %d\n", st.Vertices, st.Edges, st.Faces, st.Euler)
	if len(st.Valences) > 0 {
		b.WriteString("  valences")
		for _, n := range slices.Sorted(maps.Keys(st.Valences)) {
			fmt.Fprintf(&b, " %d:%d", n, st.Valences[n])
		}
		b.WriteByte('\n')
	}
	if !st.Bounds.IsEmpty() {
		fmt.Fprintf(&b, "  bounds %v to %v  center %v  size %v\n",
			st.Bounds.Min, st.Bounds.Max, st.Bounds.Center(), st.Bounds.Size())
	}
	fmt.Fprintf(&b, "  area %g\n", st.Area)
	logx.PrintfInfo("%s", b.String())
}
