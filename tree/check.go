// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/ordtree/fault"
)

// Check - verify ordering, balance factors and node count
func (tree *AVL[K, V]) Check() error {
	n, err := checkOrder(tree.root, tree.compare)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrNodeCount
	}
	_, err = checkBalance(tree.root)
	return err
}

// Check - verify ordering, colouring, black heights and node count
func (tree *RedBlack[K, V]) Check() error {
	n, err := checkOrder(tree.root, tree.compare)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrNodeCount
	}
	if isRed(tree.root) {
		return fault.ErrRedRoot
	}
	_, err = checkColour(tree.root)
	return err
}

// internal: in-order walk checking keys strictly increase
// returns the number of nodes visited
func checkOrder[K, V, T any](p *node[K, V, T], compare CompareFunc[K]) (int, error) {
	count := 0
	var previous *node[K, V, T]
	stack := make([]*node[K, V, T], 0, 64)
	for nil != p || len(stack) > 0 {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nil != previous && compare(previous.key, p.key) >= 0 {
			return count, fault.ErrKeyOrder
		}
		previous = p
		count += 1
		p = p.right
	}
	return count, nil
}

// internal: returns the sub-tree height
func checkBalance[K, V any](p *node[K, V, balance]) (int, error) {
	if nil == p {
		return 0, nil
	}
	l, err := checkBalance(p.left)
	if nil != err {
		return 0, err
	}
	r, err := checkBalance(p.right)
	if nil != err {
		return 0, err
	}
	d := r - l
	if d < -1 || d > 1 {
		return 0, fault.ErrTreeImbalance
	}
	if balance(d) != p.tag {
		return 0, fault.ErrBalanceFactor
	}
	if l > r {
		return 1 + l, nil
	}
	return 1 + r, nil
}

// internal: returns the black height, an absent child counts as one
// black node
func checkColour[K, V any](p *node[K, V, color]) (int, error) {
	if nil == p {
		return 1, nil
	}
	if isRed(p) && (isRed(p.left) || isRed(p.right)) {
		return 0, fault.ErrRedChildOfRed
	}
	l, err := checkColour(p.left)
	if nil != err {
		return 0, err
	}
	r, err := checkColour(p.right)
	if nil != err {
		return 0, err
	}
	if l != r {
		return 0, fault.ErrBlackHeight
	}
	if isRed(p) {
		return l, nil
	}
	return 1 + l, nil
}
