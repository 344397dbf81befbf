// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/logger"
)

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root    *Node[K, V]
	compare Comparator[K]
	count   int
	log     *logger.L
}

// New - create an initially empty tree ordered by compare
//
// a nil compare orders built-in numeric and string keys naturally
// and Item keys by their Compare method
func New[K any, V any](compare Comparator[K]) *Tree[K, V] {
	if nil == compare {
		compare = defaultCompare[K]
	}
	return &Tree[K, V]{
		root:    nil,
		compare: compare,
		count:   0,
	}
}

// NewOrdered - create an empty tree for keys with a natural order
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](cmp.Compare[K])
}

// NewItem - create an empty tree for self-ordering keys
func NewItem[V any]() *Tree[Item, V] {
	return New[Item, V](ItemCompare)
}

// SetLog - attach a logger channel, nil silences the tree
func (tree *Tree[K, V]) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}
