// Package config provides configuration loading, merging, and validation
// facilities for the go-wise client and its development backend.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the development server.
package config
