package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ib-77/handoff/pkg/handoff/logging"
)

// PipelineConfig controls one pipeline run.
type PipelineConfig struct {
	Capacity       int           `yaml:"capacity" mapstructure:"capacity"`
	Items          int           `yaml:"items" mapstructure:"items"`
	ProducerDelay  time.Duration `yaml:"producer_delay" mapstructure:"producer_delay"`
	ConsumerDelay  time.Duration `yaml:"consumer_delay" mapstructure:"consumer_delay"`
	ConsumerWarmup time.Duration `yaml:"consumer_warmup" mapstructure:"consumer_warmup"`
}

type Config struct {
	Name     string         `yaml:"name" mapstructure:"name"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Logging  logging.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills fields that have no meaningful zero value.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "handoff"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Pipeline.Capacity < 0 {
		errs = append(errs, fmt.Errorf("pipeline.capacity must be >= 0 (got: %d)", c.Pipeline.Capacity))
	}
	if c.Pipeline.Items < 0 {
		errs = append(errs, fmt.Errorf("pipeline.items must be >= 0 (got: %d)", c.Pipeline.Items))
	}
	if c.Pipeline.ProducerDelay < 0 || c.Pipeline.ConsumerDelay < 0 || c.Pipeline.ConsumerWarmup < 0 {
		errs = append(errs, errors.New("pipeline delays must not be negative"))
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
