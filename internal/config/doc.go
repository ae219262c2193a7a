// Package config loads the application configuration from layered sources:
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults, merged in that priority order and validated before use.
package config
