// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// maximum number of reclaimed nodes kept by a single tree
const poolLimit = 256

// a node in the tree, T is the balancing tag
type node[K, V, T any] struct {
	left  *node[K, V, T] // left sub-tree
	right *node[K, V, T] // right sub-tree
	key   K              // key part for ordering
	value V              // value part for data storage
	tag   T              // balance factor or colour
}

// which child of a node
type side int

const (
	leftSide side = iota
	rightSide
)

func (s side) other() side {
	if leftSide == s {
		return rightSide
	}
	return leftSide
}

func (p *node[K, V, T]) child(s side) *node[K, V, T] {
	if leftSide == s {
		return p.left
	}
	return p.right
}

func (p *node[K, V, T]) setChild(s side, n *node[K, V, T]) {
	if leftSide == s {
		p.left = n
	} else {
		p.right = n
	}
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *core[K, V, T]) newNode(key K, value V, tag T) *node[K, V, T] {
	n := len(tree.pool)
	if 0 == n {
		return &node[K, V, T]{
			key:   key,
			value: value,
			tag:   tag,
		}
	}
	p := tree.pool[n-1]
	tree.pool[n-1] = nil
	tree.pool = tree.pool[:n-1]
	if nil != p.left || nil != p.right {
		panic("pool corrupt")
	}
	p.key = key
	p.value = value
	p.tag = tag
	return p
}

// reclaim a detached node, the key and value are released so that
// the pool does not keep them reachable
func (tree *core[K, V, T]) freeNode(p *node[K, V, T]) {
	*p = node[K, V, T]{}
	if len(tree.pool) < poolLimit {
		tree.pool = append(tree.pool, p)
	}
}
