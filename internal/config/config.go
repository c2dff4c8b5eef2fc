// Package config defines the data structures related to configuration and
// includes functions for loading, normalizing and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-calculator.
type Configuration struct {
	Mortgage Mortgage      `json:"mortgage" yaml:"mortgage"`
	Logging  LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
	Output   OutputConfig  `json:"output,omitempty" yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `json:"level,omitempty" yaml:"level,omitempty" mapstructure:"level"`                // debug, info, warn, error
	Format     string `json:"format,omitempty" yaml:"format,omitempty" mapstructure:"format"`             // json, console
	OutputFile string `json:"outputFile,omitempty" yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `json:"format,omitempty" yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables such as MORTGAGE_HOMEVALUE
// override values from the file.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper(true)
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
// It is used for configurations uploaded to the HTTP API, so only the
// uploaded document is read: no environment overrides and no mortgage
// defaults.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper(false)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// newViper returns a viper instance for YAML. With withEnv set, MORTGAGE_*
// environment variables and the mortgage defaults apply.
func newViper(withEnv bool) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	if !withEnv {
		return v
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Register the mortgage keys so AutomaticEnv can override them even when
	// the file omits them.
	v.SetDefault("mortgage.type", constants.MortgageTypeFixed)
	v.SetDefault("mortgage.homeValue", constants.DefaultHomeValue)
	v.SetDefault("mortgage.deposit", constants.DefaultDeposit)
	v.SetDefault("mortgage.interestRate", constants.DefaultInterestRate)
	v.SetDefault("mortgage.termYears", constants.DefaultTermYears)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	configuration.Mortgage.Normalize()
	return &configuration, nil
}

// Validate checks the configuration for errors that prevent a schedule from
// being computed.
func (conf *Configuration) Validate() error {
	return conf.Mortgage.Validate()
}
