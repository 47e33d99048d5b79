// Package cli parses command-line arguments for the stepgraph binary and
// builds the configuration and logger it runs with.
package cli
