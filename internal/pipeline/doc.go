// Package pipeline orchestrates file discovery, per-file processing, and
// batch summary reporting. Files are processed strictly one at a time in
// discovery order; a failure in one file never aborts the rest of the batch.
package pipeline
