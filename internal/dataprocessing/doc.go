// Package dataprocessing builds the unified movie record set from the four
// tabular sources: the box-office fact table and the director, genre, and
// language dimensions.
//
// The pipeline has three stages:
//
// 1. Normalizer: maps raw column labels to canonical snake_case identifiers
// 2. Loader: reads the CSV sources and left-joins them on their entity keys
// 3. Coercer: converts numeric and date text, deriving year and weekday
//
// Every fact row yields exactly one unified record. Cell-level coercion
// failures recover to null; structural failures (missing file, malformed
// CSV, duplicate dimension keys) abort the load.
//
// Basic usage:
//
//	loader := dataprocessing.NewLoader(logger)
//	ds, err := loader.Load(ctx, paths)
//	if err != nil {
//	    log.Fatal(err)
//	}
package dataprocessing
