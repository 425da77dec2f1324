// Package images resolves and copies the image files that belong to a record.
//
// Image folders are found by name below a root directory. Within a folder,
// only accepted formats are considered and a file is skipped when a
// preferred alternative exists: a TIFF wins over a JPEG of the same stem,
// and an edited version (e.g. "a_bearbeitet.tif") wins over the unedited
// JPEG or TIFF.
package images
