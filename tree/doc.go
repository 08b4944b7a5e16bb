// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - ordered key/value containers built on two self
// balancing binary search trees: AVL (height balanced) and red-black
// (colour balanced)
//
// Both engines share the same read path (Find, Min, Max, Successor)
// and the same pair of rotation primitives; they differ only in the
// balancing tag kept on each node and in the fix-up applied while a
// mutation unwinds back to the root.
//
// Nodes carry no parent pointers.  Insert and Remove recurse down to
// the mutation point and every level returns its possibly re-rooted
// sub-tree to its caller.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use a mutex to restrict access to
//       the whole tree.
package tree
