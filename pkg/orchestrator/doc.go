// Package orchestrator wires settings, layout decoration, theme selection and
// rendering into single calls for hosts that prefer one entry point.
package orchestrator
