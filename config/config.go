// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the subdivide tool,
// which can be read from TOML or YAML files and is validated with
// struct tags.
package config

import (
	"fmt"
	"runtime"

	"cogentcore.org/subdivide/halfedge"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Job is one subdivision run: read Input, apply Iterations passes of
// Scheme and write the result to Output.
type Job struct {

	// the mesh file to read (.obj or .off)
	Input string `validate:"required"`

	// the mesh file to write (.obj or .off)
	Output string `validate:"required"`

	// the subdivision scheme; a job in a batch with no scheme uses the
	// scheme of the enclosing config
	Scheme string `validate:"omitempty,oneof=loop butterfly"`

	// the number of subdivision passes
	Iterations int `validate:"min=0"`
}

// Config is the main config struct that contains all of the
// configuration options for the subdivide tool.
type Config struct {

	// the mesh file to read for a single run
	Input string

	// the mesh file to write for a single run
	Output string

	// [def: loop] the subdivision scheme: loop or butterfly
	Scheme string `validate:"oneof=loop butterfly"`

	// [def: 1] the number of subdivision passes
	Iterations int `validate:"min=0"`

	// [def: index] how opposite halfedges are found: scan or index
	Twins string `validate:"oneof=scan index"`

	// print mesh statistics after each run
	Stats bool

	// run again every time the input file changes
	Watch bool

	// [def: number of CPUs] the maximum number of batch jobs that run at once
	Concurrency int `validate:"min=1"`

	// the jobs of a batch run
	Jobs []Job `validate:"dive"`
}

// Defaults sets the default values of the config.
func (c *Config) Defaults() {
	c.Scheme = halfedge.SchemeLoop.String()
	c.Iterations = 1
	c.Twins = halfedge.TwinIndex.String()
	c.Concurrency = runtime.NumCPU()
}

// Open returns a config with default values overwritten by the values
// in the given file. It is not validated.
func Open(filename string) (*Config, error) {
	c := &Config{}
	c.Defaults()
	if err := OpenFile(c, filename); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the option values and every batch job.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Job returns the single run described by the top level fields.
func (c *Config) Job() Job {
	return Job{Input: c.Input, Output: c.Output, Scheme: c.Scheme, Iterations: c.Iterations}
}

// ValidateRun checks the config for a single run, which needs an input
// and an output.
func (c *Config) ValidateRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(c.Job()); err != nil {
		return fmt.Errorf("invalid run: %w", err)
	}
	return nil
}

// BatchJobs returns the batch jobs with their missing schemes filled in.
func (c *Config) BatchJobs() []Job {
	jobs := make([]Job, len(c.Jobs))
	for i, j := range c.Jobs {
		if j.Scheme == "" {
			j.Scheme = c.Scheme
		}
		jobs[i] = j
	}
	return jobs
}

// SchemeOf parses the scheme of the given job.
func SchemeOf(j Job) (halfedge.Scheme, error) {
	s, err := halfedge.ParseScheme(j.Scheme)
	if err != nil {
		return s, err
	}
	if s == halfedge.SchemeMidpoint {
		return s, fmt.Errorf("config: scheme %q is not available here (use loop or butterfly)", j.Scheme)
	}
	return s, nil
}

// TwinStrategy parses the Twins option.
func (c *Config) TwinStrategy() (halfedge.TwinStrategy, error) {
	return halfedge.ParseTwinStrategy(c.Twins)
}
