// Package exporter writes analysis results to disk and renders them for the
// console.
//
// This package contains four main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// appending, and an optional UTF-8 BOM for Excel compatibility.
//
// Exporter: Writes each result table as a delimited-text file and a
// tabular-markdown file under the output directory.
//
// ReportBuilder: Runs the fixed report aggregation set, exports every
// section, and assembles the combined REPORT.md and REPORT.xlsx.
//
// FormatText/FormatMarkdown: Render a result table as an aligned console
// block or a GitHub pipe table.
package exporter
