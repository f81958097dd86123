// SPDX-License-Identifier: MIT
// Package analysis: sentinel error set. Model and sector failures reuse
// package iim's sentinels; matrix failures reuse package matrix's.

package analysis

import "errors"

var (
	// ErrTooFewSectors indicates a model with fewer than two sectors;
	// the (n−1) normalization of the indices is undefined there.
	ErrTooFewSectors = errors.New("analysis: at least two sectors required")

	// ErrBadOrder indicates an interdependency order < 1.
	ErrBadOrder = errors.New("analysis: order must be >= 1")
)
