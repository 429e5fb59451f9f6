// Package diag provides the per-search Counters (steps, memops,
// comparisons) that search increments at documented points, and
// SizeOf byte-estimate helpers used by the CLI's diagnostic banner.
package diag
