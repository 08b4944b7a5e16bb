// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Insert - add a key/value to the tree, or overwrite the value of an
// existing key.  Returns the previous value and true if the key was
// already present.
func (tree *AVL[K, V]) Insert(key K, value V) (V, bool) {
	var previous V
	replaced := false
	tree.root, previous, replaced, _ = tree.insert(key, value, tree.root)
	if !replaced {
		tree.count += 1
	}
	return previous, replaced
}

// internal routine for insert
// returns: new sub-tree root, previous value, replaced flag, grown flag
func (tree *AVL[K, V]) insert(key K, value V, p *node[K, V, balance]) (*node[K, V, balance], V, bool, bool) {
	if nil == p { // insert new node
		var zero V
		return tree.newNode(key, value, 0), zero, false, true
	}

	var previous V
	replaced := false
	h := false

	c := tree.compare(key, p.key)
	switch {
	case c < 0:
		p.left, previous, replaced, h = tree.insert(key, value, p.left)
		if h {
			p, h = avlGrown(p, leftSide)
		}
	case c > 0:
		p.right, previous, replaced, h = tree.insert(key, value, p.right)
		if h {
			p, h = avlGrown(p, rightSide)
		}
	default:
		previous = p.value
		p.value = value
		replaced = true
	}
	return p, previous, replaced, h
}
