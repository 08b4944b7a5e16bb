// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"golang.org/x/exp/constraints"
)

// CompareFunc - three way comparison of keys: negative when a < b,
// zero when equal and positive when a > b
type CompareFunc[K any] func(a K, b K) int

// Compare - the natural ordering of any ordered type
func Compare[K constraints.Ordered](a K, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Map - the operations common to both tree engines
type Map[K, V any] interface {
	Insert(key K, value V) (V, bool)
	Remove(key K) (K, V, bool)
	Find(key K) (V, bool)
	Min() (K, V, bool)
	Max() (K, V, bool)
	Successor(key K) (K, V, bool)
	Count() int
	IsEmpty() bool
	Height() int
	Check() error
}

// ensure both engines satisfy the interface
var (
	_ Map[int, int] = (*AVL[int, int])(nil)
	_ Map[int, int] = (*RedBlack[int, int])(nil)
)

// core - the part of a tree independent of the balancing method
type core[K, V, T any] struct {
	root    *node[K, V, T]
	compare CompareFunc[K]
	count   int
	pool    []*node[K, V, T]
}

func newCore[K, V, T any](compare CompareFunc[K]) core[K, V, T] {
	if nil == compare {
		panic("tree: nil compare function")
	}
	return core[K, V, T]{
		root:    nil,
		compare: compare,
		count:   0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *core[K, V, T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *core[K, V, T]) Count() int {
	return tree.count
}

// Height - number of nodes on the longest root to leaf path
func (tree *core[K, V, T]) Height() int {
	return height(tree.root)
}

func height[K, V, T any](p *node[K, V, T]) int {
	if nil == p {
		return 0
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}
