// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// the item taken out of the tree by a delete
type removal[K, V any] struct {
	key   K
	value V
	found bool
}

func (r *removal[K, V]) result() (K, V, bool) {
	return r.key, r.value, r.found
}

// Remove - removes a specific item from the tree and returns it
func (tree *AVL[K, V]) Remove(key K) (K, V, bool) {
	r := removal[K, V]{}
	tree.root, _ = tree.delete(key, tree.root, &r)
	if r.found {
		tree.count -= 1
	}
	return r.result()
}

// internal delete routine
// returns the new sub-tree root and whether its height decreased
func (tree *AVL[K, V]) delete(key K, p *node[K, V, balance], r *removal[K, V]) (*node[K, V, balance], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	h := false
	c := tree.compare(key, p.key)
	switch {
	case c < 0:
		p.left, h = tree.delete(key, p.left, r)
		if h {
			p, h = avlShrunk(p, leftSide)
		}
	case c > 0:
		p.right, h = tree.delete(key, p.right, r)
		if h {
			p, h = avlShrunk(p, rightSide)
		}
	default: // found: delete p
		r.key, r.value, r.found = p.key, p.value, true
		q := p
		switch {
		case nil == q.left:
			p = q.right
			tree.freeNode(q)
			h = true
		case nil == q.right:
			p = q.left
			tree.freeNode(q)
			h = true
		default:
			// two children: take over the successor's item and
			// remove the successor's node instead
			var s *node[K, V, balance]
			q.right, s, h = tree.deleteFirst(q.right)
			q.key, q.value = s.key, s.value
			tree.freeNode(s)
			if h {
				p, h = avlShrunk(q, rightSide)
			}
		}
	}
	return p, h
}

// detach the lowest node of a sub-tree
// returns: new sub-tree root, the detached node, shrunk flag
func (tree *AVL[K, V]) deleteFirst(p *node[K, V, balance]) (*node[K, V, balance], *node[K, V, balance], bool) {
	if nil == p.left {
		r := p.right
		p.right = nil
		return r, p, true
	}
	var s *node[K, V, balance]
	h := false
	p.left, s, h = tree.deleteFirst(p.left)
	if h {
		p, h = avlShrunk(p, leftSide)
	}
	return p, s, h
}
