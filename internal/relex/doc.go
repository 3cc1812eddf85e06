// Package relex models the relation graph produced by a RelEx-style
// dependency parser for one sentence.
//
// The parser itself is not part of this module. Sentences reach the core
// either from corpus fixtures (see internal/corpus) or from tests building
// them by hand. Everything downstream consumes a Sentence through its
// Foreach visitor walk, never through the internal slices.
//
// Key constraints:
//   - Nodes are identified by token, not by display text. A token may carry a
//     "#n" suffix ("the#2") to tell repeated words apart; the suffix is not
//     part of the display name.
//   - Display names are NFC normalized so that equal words compare equal
//     regardless of how the fixture encoded them.
//   - Binary relations are ordered (source, target); the order is
//     significant.
//
// This package imports nothing internal.
package relex
