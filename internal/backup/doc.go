// Package backup manages the local archive files produced by the
// database backup operation: directory creation, timestamped naming,
// and the output file the dump stream is written into.
package backup
