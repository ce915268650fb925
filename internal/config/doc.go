// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file: JSON with comments, or YAML when the extension is
//     .yaml/.yml
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for syncctl.
package config
