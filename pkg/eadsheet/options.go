// Package eadsheet imports indentation-encoded finding-aid spreadsheets into
// an archive description tree and generates one descriptive document and
// image folder per process row.
package eadsheet

import (
	"log/slog"
	"runtime"

	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/mets"
)

// Options configures an import run.
type Options struct {
	// Template is the workflow name used to select the import template.
	Template string
	// ImportFolder receives the generated documents and image folders.
	ImportFolder string
	// Collections are attached to every generated document.
	Collections []string
	// Prefs declares the known structure and metadata types. Nil accepts all.
	Prefs *mets.Prefs
	// Writer serializes documents. Defaults to an indented XMLWriter.
	Writer mets.Writer
	// Workers bounds the records processed in parallel during phase 2.
	// If zero, defaults to the number of CPUs.
	Workers int
	// StorePath is the SQLite database the finished tree is saved to.
	// If empty, the tree is kept in memory only.
	StorePath string
	// Logger receives progress and warnings. If nil, logs are discarded.
	Logger *slog.Logger
}

// DefaultOptions returns default import options.
func DefaultOptions() Options {
	return Options{
		Template:     "*",
		ImportFolder: ".",
	}
}

// WorkerCount returns the number of phase 2 workers.
func (o Options) WorkerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// ShouldPersist returns whether the tree is saved to a SQLite store.
func (o Options) ShouldPersist() bool {
	return o.StorePath != ""
}

func (o Options) writer() mets.Writer {
	if o.Writer != nil {
		return o.Writer
	}
	return mets.XMLWriter{Indent: true}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
