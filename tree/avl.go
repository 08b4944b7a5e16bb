// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"strconv"
)

// balance - height of right sub-tree minus height of left sub-tree
// -1, 0, +1 at rest, ±2 only while rebalancing
type balance int8

func (b balance) String() string {
	if b > 0 {
		return "+" + strconv.Itoa(int(b))
	}
	return strconv.Itoa(int(b))
}

// AVL - height balanced tree
type AVL[K, V any] struct {
	core[K, V, balance]
}

// NewAVL - create an initially empty AVL tree ordered by compare
func NewAVL[K, V any](compare CompareFunc[K]) *AVL[K, V] {
	return &AVL[K, V]{
		core: newCore[K, V, balance](compare),
	}
}

// rotations that also recompute the balance factors exactly
//
// with a the old sub-tree root and b the child that replaces it:
//
//	left:  a' = a - 1 - max(b, 0)   b' = b - 1 + min(a', 0)
//	right: a' = a + 1 - min(b, 0)   b' = b + 1 + max(a', 0)
func avlRotateLeft[K, V any](a *node[K, V, balance]) *node[K, V, balance] {
	b := a.right
	a.tag = a.tag - 1 - max(b.tag, 0)
	b.tag = b.tag - 1 + min(a.tag, 0)
	return rotateLeft(a)
}

func avlRotateRight[K, V any](a *node[K, V, balance]) *node[K, V, balance] {
	b := a.left
	a.tag = a.tag + 1 - min(b.tag, 0)
	b.tag = b.tag + 1 + max(a.tag, 0)
	return rotateRight(a)
}

// restore a sub-tree whose root has a balance of ±2
// returns the new sub-tree root
func avlRebalance[K, V any](p *node[K, V, balance]) *node[K, V, balance] {
	switch p.tag {
	case -2:
		if p.left.tag <= 0 {
			// single LL rotation
			return avlRotateRight(p)
		}
		// double LR rotation
		p.left = avlRotateLeft(p.left)
		return avlRotateRight(p)

	case +2:
		if p.right.tag >= 0 {
			// single RR rotation
			return avlRotateLeft(p)
		}
		// double RL rotation
		p.right = avlRotateRight(p.right)
		return avlRotateLeft(p)

	default:
		panic("avl: rebalance of a balanced node")
	}
}

// insert: the s branch of p has grown
// returns the new sub-tree root and whether its height increased
func avlGrown[K, V any](p *node[K, V, balance], s side) (*node[K, V, balance], bool) {
	if leftSide == s {
		p.tag -= 1
	} else {
		p.tag += 1
	}
	switch p.tag {
	case 0:
		return p, false
	case -1, +1:
		return p, true
	}
	// an insertion rotation always restores the previous height
	return avlRebalance(p), false
}

// delete: the s branch of p has shrunk
// returns the new sub-tree root and whether its height decreased
func avlShrunk[K, V any](p *node[K, V, balance], s side) (*node[K, V, balance], bool) {
	if leftSide == s {
		p.tag += 1
	} else {
		p.tag -= 1
	}
	switch p.tag {
	case 0:
		return p, true
	case -1, +1:
		return p, false
	}
	// a single rotation with a level child keeps the height
	p = avlRebalance(p)
	return p, 0 == p.tag
}
