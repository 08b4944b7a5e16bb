// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Insert - add a key/value to the tree, or overwrite the value of an
// existing key.  Returns the previous value and true if the key was
// already present.
func (tree *RedBlack[K, V]) Insert(key K, value V) (V, bool) {
	var previous V
	replaced := false
	tree.root, previous, replaced = tree.insert(key, value, tree.root)
	tree.root.tag = black
	if !replaced {
		tree.count += 1
	}
	return previous, replaced
}

// internal routine for insert
// returns: new sub-tree root, previous value, replaced flag
func (tree *RedBlack[K, V]) insert(key K, value V, p *node[K, V, color]) (*node[K, V, color], V, bool) {
	if nil == p {
		var zero V
		return tree.newNode(key, value, red), zero, false
	}

	var previous V
	replaced := false
	s := leftSide

	c := tree.compare(key, p.key)
	switch {
	case c < 0:
		p.left, previous, replaced = tree.insert(key, value, p.left)
	case c > 0:
		p.right, previous, replaced = tree.insert(key, value, p.right)
		s = rightSide
	default:
		previous = p.value
		p.value = value
		return p, previous, true
	}
	if replaced {
		return p, previous, replaced
	}
	return insertFixup(p, s), previous, false
}

// insert: check the s child of g and its children for two reds in a
// row, which can only be on the insertion path
// returns the new sub-tree root
func insertFixup[K, V any](g *node[K, V, color], s side) *node[K, V, color] {
	parent := g.child(s)
	if !isRed(parent) {
		return g
	}

	var inner bool
	switch {
	case isRed(parent.child(s)):
		inner = false
	case isRed(parent.child(s.other())):
		inner = true
	default:
		return g
	}

	// red uncle: push the blackness down from g, g may now clash
	// with its own parent which is checked one level up
	uncle := g.child(s.other())
	if isRed(uncle) {
		parent.tag = black
		uncle.tag = black
		g.tag = red
		return g
	}

	// black uncle: straighten an inner grandchild then rotate g
	if inner {
		g.setChild(s, rotate(parent, s))
	}
	top := rotate(g, s.other())
	top.tag = black
	g.tag = red
	return top
}
