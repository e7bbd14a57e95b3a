// Copyright 2026 The ndvec Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sample exposes random array construction on top of the nested
// backend's generator entry point.
//
// Example:
//
//	src := sample.New(42)
//	m := src.Normal(array.Shape{3, 3}, 0, 1)
package sample

import (
	"github.com/ndvec/ndvec/internal/sample"
)

// Source draws random arrays from a seeded generator.
type Source = sample.Source

// New returns a Source seeded deterministically.
func New(seed int64) *Source {
	return sample.New(seed)
}
