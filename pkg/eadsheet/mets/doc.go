// Package mets assembles the descriptive document of a record and hands it to
// a Writer for serialization.
//
// The emitter only decides which metadata is attached and in what order.
// Metadata types are checked against Prefs; types the prefs do not declare
// are dropped and reported, and the document is still written.
package mets
