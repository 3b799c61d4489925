// Package stockframe loads end-of-day price series from disk and aligns them into
// date-indexed tables.
//
// The core functionalities include:
//   - Path resolution: mapping a symbol to its file under a data directory.
//   - Series loading: reading one symbol's dated values from CSV or JSON files, with
//     missing values represented explicitly.
//   - Alignment: joining several series on the trading days of a reference symbol
//     (SPY by default), each series becoming a column named after its symbol.
//   - Normalization and selection: rebasing every column to its first value, and
//     cutting a table down to a date range and a subset of columns.
//
// Every operation on a Table returns a new Table; tables are never mutated once built.
// Presentation lives in the renderer and plot packages, and the `sf` command-line tool
// is implemented in package cmd.
package stockframe
