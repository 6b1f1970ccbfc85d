// Package config loads handoff runner configuration with Viper.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file, an optional .env file and the process environment. Environment
// keys use the HANDOFF_ prefix with dots replaced by underscores, e.g.
// HANDOFF_PIPELINE_CAPACITY or HANDOFF_LOGGING_LEVEL.
//
//	cfg, err := config.Load(config.WithConfigFile("config.yml"))
package config
