// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults (data under ~/.wellness-tracker)
//  2. .env file and WELLNESS_* environment variables
//  3. JSON config file
//  4. Command-line overrides
//
// The main entry point is [GetStructuredConfig].
package config
