// Package engine runs questions through the conversion pipeline.
//
// For every question the engine:
//
//  1. Builds a Formula from the relation graph.
//  2. Computes the canonical signature.
//  3. Asks the converter Registry for the first converter whose pattern
//     equals the signature.
//  4. Renders the configured query forms.
//
// An unmatched question is a normal outcome, reported through
// Result.Matched. Missing fillers are reported through Result.Missing and
// become an *Error only in strict mode.
//
// Batches run sequentially in input order. Each result is stamped with a
// sequence number from a logical Clock and each batch gets a run id from a
// RunIDGenerator, so two runs over the same corpus produce identical output
// apart from the run id.
package engine
