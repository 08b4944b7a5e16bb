// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// single left rotation, the right child becomes the sub-tree root
//
//	    a                b
//	   / \              / \
//	  W   b     =>     a   Y
//	     / \          / \
//	    X   Y        W   X
func rotateLeft[K, V, T any](a *node[K, V, T]) *node[K, V, T] {
	b := a.right
	a.right = b.left
	b.left = a
	return b
}

// single right rotation, the left child becomes the sub-tree root
//
//	      a            b
//	     / \          / \
//	    b   W   =>   Y   a
//	   / \              / \
//	  Y   X            X   W
func rotateRight[K, V, T any](a *node[K, V, T]) *node[K, V, T] {
	b := a.left
	a.left = b.right
	b.right = a
	return b
}

// rotate so that p moves down to side s of its replacement
func rotate[K, V, T any](p *node[K, V, T], s side) *node[K, V, T] {
	if leftSide == s {
		return rotateLeft(p)
	}
	return rotateRight(p)
}
