// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree
//
// returns the removed value and true, or false if no node has key
func (tree *Tree[K, V]) Remove(key K) (V, bool) {
	x, c := tree.locate(key)
	if nil == x || 0 != c {
		tree.debugf("remove: key: %v  not found", key)
		var value V
		return value, false
	}
	return tree.removeNode(x), true
}

// Remove - take this node out of its tree
//
// returns the node's value and true, or false if the node was already
// removed
func (p *Node[K, V]) Remove() (V, bool) {
	if p.IsInvalid() {
		var value V
		return value, false
	}
	return p.tree.removeNode(p), true
}

// internal: unlink x, rebalance and invalidate x
func (tree *Tree[K, V]) removeNode(x *Node[K, V]) V {

	// with two sub-trees, trade places with the in-order successor so
	// that x has at most one child
	if nil != x.child[left] && nil != x.child[right] {
		y := tree.successor(x)
		x.swapWith(y)
		if tree.root == x {
			tree.root = y
		}
	}

	c := x.child[left]
	if nil == c {
		c = x.child[right]
	}

	if up := x.up; nil != up {
		up.connectChild(c, up.indexOf(x))
		tree.restoreBalance(up)
	} else {
		tree.root = c
		if nil != c {
			c.up = nil
		}
	}

	value := x.value
	tree.debugf("remove: key: %v  count: %d", x.key, tree.count-1)
	x.invalidate()
	tree.count -= 1
	return value
}

// internal: lowest node in the right sub-tree of x
//
// searches for x's own key in a throwaway view rooted at x.right;
// every key there is larger, so the descent always goes left and ends
// at the successor without writing to any node
func (tree *Tree[K, V]) successor(x *Node[K, V]) *Node[K, V] {
	view := Tree[K, V]{
		root:    x.child[right],
		compare: tree.compare,
	}
	y, _ := view.locate(x.key)
	return y
}
