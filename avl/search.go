// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
//
// returns the node holding key, otherwise the last node visited on
// the way down (where key would be inserted), or nil for an empty
// tree; check the result's key to tell the two apart
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	p, _ := tree.locate(key)
	return p
}

// internal: descend towards key, returns the last node visited and
// the comparison of its key with key (zero on an exact match)
//
// only reads the tree, so it is safe on a partial view of a sub-tree
func (tree *Tree[K, V]) locate(key K) (*Node[K, V], int) {
	p := tree.root
	if nil == p {
		return nil, 0
	}
	for {
		c := tree.compare(p.key, key)
		if 0 == c {
			return p, 0
		}
		side := right
		if c > 0 { // p.key > key
			side = left
		}
		next := p.child[side]
		if nil == next {
			return p, c
		}
		p = next
	}
}
