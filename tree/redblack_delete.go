// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Remove - removes a specific item from the tree and returns it
func (tree *RedBlack[K, V]) Remove(key K) (K, V, bool) {
	r := removal[K, V]{}
	tree.root, _ = tree.delete(key, tree.root, &r)
	if nil != tree.root {
		tree.root.tag = black
	}
	if r.found {
		tree.count -= 1
	}
	return r.result()
}

// internal delete routine
// returns the new sub-tree root and whether it is one black node short
func (tree *RedBlack[K, V]) delete(key K, p *node[K, V, color], r *removal[K, V]) (*node[K, V, color], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	short := false
	c := tree.compare(key, p.key)
	switch {
	case c < 0:
		p.left, short = tree.delete(key, p.left, r)
		if short {
			p, short = deleteFixup(p, leftSide)
		}
	case c > 0:
		p.right, short = tree.delete(key, p.right, r)
		if short {
			p, short = deleteFixup(p, rightSide)
		}
	default: // found: delete p
		r.key, r.value, r.found = p.key, p.value, true
		if nil != p.left && nil != p.right {
			// two children: take over the successor's item and
			// remove the successor's node instead
			var s *node[K, V, color]
			p.right, s, short = tree.deleteFirst(p.right)
			p.key, p.value = s.key, s.value
			tree.freeNode(s)
			if short {
				p, short = deleteFixup(p, rightSide)
			}
		} else {
			q := p
			p, short = detach(q)
			tree.freeNode(q)
		}
	}
	return p, short
}

// detach the lowest node of a sub-tree
// returns: new sub-tree root, the detached node, short flag
func (tree *RedBlack[K, V]) deleteFirst(p *node[K, V, color]) (*node[K, V, color], *node[K, V, color], bool) {
	if nil == p.left {
		r, short := detach(p)
		return r, p, short
	}
	var s *node[K, V, color]
	short := false
	p.left, s, short = tree.deleteFirst(p.left)
	if short {
		p, short = deleteFixup(p, leftSide)
	}
	return p, s, short
}

// unlink a node that has at most one child
// returns the replacement and whether a black node was lost
func detach[K, V any](q *node[K, V, color]) (*node[K, V, color], bool) {
	c := q.left
	if nil == c {
		c = q.right
	}
	q.left = nil
	q.right = nil

	if nil != c {
		// a lone child is red under a black node
		c.tag = black
		return c, false
	}
	return nil, !isRed(q)
}

// delete: the s branch of p is one black node short
// returns the new sub-tree root and whether that whole sub-tree is
// now short
func deleteFixup[K, V any](p *node[K, V, color], s side) (*node[K, V, color], bool) {
	sibling := p.child(s.other())

	if isRed(sibling) {
		// move the red sibling above p, p gets a black sibling and
		// being red itself the repair below always completes
		top := rotate(p, s)
		top.tag = black
		p.tag = red
		q, _ := deleteFixup(p, s)
		top.setChild(s, q)
		return top, false
	}

	far := sibling.child(s.other())
	near := sibling.child(s)

	if !isRed(far) && !isRed(near) {
		sibling.tag = red
		if isRed(p) {
			p.tag = black
			return p, false
		}
		return p, true
	}

	if !isRed(far) {
		// red near nephew: rotate it into the sibling position
		sibling = rotate(sibling, s.other())
		sibling.tag = black
		sibling.child(s.other()).tag = red
		p.setChild(s.other(), sibling)
	}

	// red far nephew
	top := rotate(p, s)
	top.tag = p.tag
	p.tag = black
	top.child(s.other()).tag = black
	return top, false
}
