// Package reshape converts wide year-column tables to tidy long format via
// an explicit melt → map → pivot pipeline.
//
//   - Melt: one row per (original row, time-series column) pair.
//   - MapYears: attach Year and Metric columns from the header mapping.
//   - Pivot: group by anchors + Year, one output column per metric,
//     first non-missing value wins.
//
// Tables with no time-series columns pass through unchanged. A structural
// pivot failure (metric name colliding with Year or an anchor) falls back
// to the long-format intermediate instead of failing the file.
package reshape
