// Package cmd provides the command-line interface for cssel.
//
// This package implements all CLI commands using the Cobra framework.
//
// # Available Commands
//
//   - build: Build a single selector from part tokens
//   - render: Render a YAML stylesheet document to CSS
//   - watch: Re-render a document on change, optionally with a live preview server
//   - version: Show version information
//
// # Command Examples
//
//	// Build a compound selector from part tokens
//	cssel build div '#main' .container ':hover' '::before'
//
//	// Render a document to stdout
//	cssel render styles.yaml
//
//	// Render minified to a file
//	cssel render styles.yaml -o dist/site.css --minify
//
//	// Watch with a live preview server
//	cssel watch styles.yaml --serve --port 3000
//
// # Configuration Integration
//
// Commands respect configuration from multiple sources in order of
// precedence:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables (CSSEL_*)
//  3. Configuration file (.cssel.yml)
//  4. Default values (lowest priority)
package cmd
