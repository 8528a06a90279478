// Package config resolves the application configuration from command-line
// flags, KATA_* environment variables, an optional YAML or TOML file and
// built-in defaults, in that order of priority.
package config
