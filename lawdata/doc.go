// Package lawdata loads the annotated acts reference dataset from disk.
//
// The dataset is a directory of JSON files, one act per file, with
// title, year, and text fields. Loading is tolerant: unreadable or
// malformed files are skipped with a warning so one bad file never blocks
// the rest of the dataset.
package lawdata
