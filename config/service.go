package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jackwilsdon/responder/logkit"
	"github.com/jackwilsdon/responder/observability"
	"github.com/jackwilsdon/responder/server"
)

// ServiceConfig is the full configuration for the responder service.
type ServiceConfig struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging       logkit.Config        `yaml:"logging" mapstructure:"logging"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults applies default values to all sections.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "responder"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Observability.ApplyDefaults(c.Name)
}

var validate = validator.New()

// Validate validates the configuration. Struct tags cover the base
// fields; each section keeps its own Validate for rules tags cannot
// express.
func (c *ServiceConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Observability.Validate()
}
