// Package config handles client configuration.
//
// Settings come from a YAML file with ${VAR} environment interpolation, or
// straight from the environment (T_INVEST_API, T_IS_SANDBOX) optionally
// seeded from a .env file.
package config
