// Package config loads the lvnum CLI configuration.
//
// Sources, lowest to highest precedence: built-in defaults, a YAML file,
// LVNUM_* environment variables. Command-line flags are applied on top by
// the CLI itself.
//
//	log:
//	  level: debug
//	  console: true
//	output:
//	  format: yaml
//	  precision: 6
//	batch:
//	  workers: 4
package config
