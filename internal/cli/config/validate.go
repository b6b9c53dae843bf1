package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/leapstack-labs/leapscaffold/internal/cli/output"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if !output.ValidMode(c.OutputFormat) {
		errs = append(errs, fmt.Errorf("unknown output format %q (want auto, text, markdown or json)", c.OutputFormat))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce))
	}

	names := make([]string, 0, len(c.Scaffolds))
	for name := range c.Scaffolds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if c.Scaffolds[name].Path == "" {
			errs = append(errs, fmt.Errorf("scaffolds.%s.path is required", name))
		}
	}

	return errors.Join(errs...)
}
