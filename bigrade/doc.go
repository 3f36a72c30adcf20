// SPDX-License-Identifier: MIT

// Package bigrade pairs a column-major mod-2 matrix with a 2-D grade index,
// and implements the lex-ordered bigraded kernel reduction: given a matrix
// whose columns are grouped by (x, y) bigrade, it computes a basis for the
// kernel of the encoded linear map, itself organised by bigrade.
//
// The kernel is built in lex order (y outer, x inner) because that is the
// order in which the standard reduction's lows[] array can be threaded
// across bigrades without losing the pivot history accumulated by earlier
// ones, then converted to colex order (x outer, y inner) for downstream
// consumers, which expect columns grouped by x-grade first.
package bigrade
