// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns the new node, or nil if a node with an equal key is already
// present, in which case the tree is unchanged
func (tree *Tree[K, V]) Insert(key K, value V) *Node[K, V] {
	if nil == tree.root {
		tree.root = newNode(tree, key, value)
		tree.count = 1
		tree.debugf("insert: key: %v  as root", key)
		return tree.root
	}

	x, c := tree.locate(key)
	if 0 == c {
		tree.debugf("insert: key: %v  duplicate rejected", key)
		return nil
	}

	n := newNode(tree, key, value)
	if c > 0 { // x.key > key
		x.connectChild(n, left)
	} else {
		x.connectChild(n, right)
	}
	tree.restoreBalance(x)
	tree.count += 1

	tree.debugf("insert: key: %v  count: %d", key, tree.count)
	return n
}
