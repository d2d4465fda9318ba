// Package sequence orders merged items for output.
//
// The order comes from a pairwise comparator applied by a stable sort:
//
//   - if a depends on b, b comes first
//   - else if b depends on a, a comes first
//   - else the larger item comes first; equal sizes keep input order
//
// This is not a topological sort. Transitive chains are not enforced: when a
// depends on c only through b, and a and c tie on size, a may land before c.
// Cycles are neither detected nor rejected.
package sequence
