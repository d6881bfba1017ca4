// Package config provides configuration loading, merging, and validation
// facilities for the client and the sync server.
//
// Configuration is assembled from multiple sources; the first one that sets
// a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] and [GetServerConfig].
package config
