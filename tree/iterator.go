// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Min - return the item with the lowest key value
func (tree *core[K, V, T]) Min() (K, V, bool) {
	return item(first(tree.root))
}

// Max - return the item with the highest key value
func (tree *core[K, V, T]) Max() (K, V, bool) {
	return item(last(tree.root))
}

// Successor - return the item with the smallest key strictly greater
// than key, the key itself need not be present in the tree
func (tree *core[K, V, T]) Successor(key K) (K, V, bool) {
	var candidate *node[K, V, T]
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.key)
		switch {
		case c < 0:
			candidate = p
			p = p.left
		case c > 0:
			p = p.right
		default:
			if nil != p.right {
				return item(first(p.right))
			}
			return item(candidate)
		}
	}
	return item(candidate)
}

// internal: lowest node in a sub-tree
func first[K, V, T any](p *node[K, V, T]) *node[K, V, T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func last[K, V, T any](p *node[K, V, T]) *node[K, V, T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

func item[K, V, T any](p *node[K, V, T]) (K, V, bool) {
	if nil == p {
		var key K
		var value V
		return key, value, false
	}
	return p.key, p.value, true
}
