// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K any, V any] struct {
	tree    *Tree[K, V]    // owning tree, nil once removed
	up      *Node[K, V]    // points to parent node
	child   [2]*Node[K, V] // left and right sub-trees
	key     K              // key part for ordering
	value   V              // value part for data storage
	height  int            // 1 for a leaf
	balance int            // height(left) - height(right)
}

// allocate a new detached leaf
func newNode[K any, V any](tree *Tree[K, V], key K, value V) *Node[K, V] {
	return &Node[K, V]{
		tree:    tree,
		key:     key,
		value:   value,
		height:  1,
		balance: 0,
	}
}

// clear a removed node
//
// nodes are never recycled, so a handle held by a caller stays
// invalid for good
func (p *Node[K, V]) invalidate() {
	var key K
	var value V

	p.tree = nil
	p.up = nil
	p.child[left] = nil
	p.child[right] = nil
	p.key = key
	p.value = value
	p.height = 0
	p.balance = 0
}
