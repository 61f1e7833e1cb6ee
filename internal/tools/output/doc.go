// Package output renders Miro API results into tool response text.
//
// Every tool response passes through a Formatter, which supports two render
// modes: "json" (pretty-printed, lossless) and "markdown" (tables for lists,
// labeled field blocks for single objects). The formatter is a pure
// projection over already-fetched values; it never mutates them and never
// performs I/O, so a single instance is shared safely across concurrent
// requests.
//
// Rendered output is capped at a configurable character budget to keep
// responses inside typical LLM context windows. Truncation appends an
// explicit notice so agents know the output is partial.
package output
