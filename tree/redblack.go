// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// colour of a red-black node
type color bool

const (
	black color = false
	red   color = true
)

func (c color) String() string {
	if red == c {
		return "R"
	}
	return "B"
}

// RedBlack - colour balanced tree
type RedBlack[K, V any] struct {
	core[K, V, color]
}

// NewRedBlack - create an initially empty red-black tree ordered by
// compare
func NewRedBlack[K, V any](compare CompareFunc[K]) *RedBlack[K, V] {
	return &RedBlack[K, V]{
		core: newCore[K, V, color](compare),
	}
}

// an absent child counts as black
func isRed[K, V any](p *node[K, V, color]) bool {
	return nil != p && red == p.tag
}
