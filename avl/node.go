// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// child slot indexes
const (
	left  = 0
	right = 1
)

// the slot on the other side
func opposite(side int) int {
	return 1 - side
}

// Left - the left sub-tree or nil
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.child[left]
}

// Right - the right sub-tree or nil
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.child[right]
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// SetValue - replace the value of a node that is still in a tree
func (p *Node[K, V]) SetValue(value V) bool {
	if p.IsInvalid() {
		return false
	}
	p.value = value
	return true
}

// Height - number of nodes on the longest path down to a leaf,
// zero for a removed node
func (p *Node[K, V]) Height() int {
	return p.height
}

// Balance - height of left sub-tree minus height of right sub-tree
func (p *Node[K, V]) Balance() int {
	return p.balance
}

// IsRoot - true if the node is the top of its tree
func (p *Node[K, V]) IsRoot() bool {
	return !p.IsInvalid() && nil == p.up
}

// IsLeaf - true if the node has no sub-trees
func (p *Node[K, V]) IsLeaf() bool {
	return !p.IsInvalid() && nil == p.child[left] && nil == p.child[right]
}

// IsInvalid - true once the node has been removed from its tree
func (p *Node[K, V]) IsInvalid() bool {
	return nil == p.tree
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// height of a possibly empty sub-tree
func heightOf[K any, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height and balance from the children
func (p *Node[K, V]) update() {
	hl := heightOf(p.child[left])
	hr := heightOf(p.child[right])
	p.height = 1 + max(hl, hr)
	p.balance = hl - hr
}

func (p *Node[K, V]) isBalanced() bool {
	return p.balance > -2 && p.balance < 2
}

// which slot holds c, -1 if c is not a child
func (p *Node[K, V]) indexOf(c *Node[K, V]) int {
	switch c {
	case p.child[left]:
		return left
	case p.child[right]:
		return right
	default:
		return -1
	}
}

// link c into a slot (c may be nil) and refresh the cached height
// and balance; every structural edit goes through here
func (p *Node[K, V]) connectChild(c *Node[K, V], side int) {
	p.child[side] = c
	if nil != c {
		c.up = p
	}
	p.update()
}
