// Package config loads the column configuration descriptor of an import.
//
// A descriptor holds one or more templates keyed by workflow name. Each
// template says which spreadsheet columns map to which document and EAD
// fields, at which archival level, which column carries the identifier and
// how process titles and image manifests are built. Templates are selected
// by exact name with a "*" wildcard fallback and are treated as immutable
// once validated.
package config
