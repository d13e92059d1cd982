// Package app contains the core application logic. It wires the manifest
// loader, pattern validation, seed normalization and run planning into one
// lifecycle, decoupled from any specific entrypoint like a CLI.
package app
