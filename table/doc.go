// Package table provides the in-memory tabular record set the calibration
// engine operates on.
//
// A Table is an ordered collection of named, typed columns (numeric, text,
// bool) sharing a common row count. Every cell carries a validity flag, so
// missing measurements (e.g. an engine without cruise TSFC data) are
// represented explicitly instead of with sentinel values.
//
// Tables are built append-only and treated as immutable snapshots once
// constructed: derived tables created by WithColumn or GroupMeanBy share
// the columns of their source instead of copying them, which is safe as
// long as callers never mutate a column after handing it to a table.
// All operations on a constructed table are safe for concurrent use.
//
// Column names are caller-specified strings; the package imposes no schema
// beyond name uniqueness within a table.
package table
