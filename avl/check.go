// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the whole tree: parent links, key order, cached
// heights and balances, AVL balance and the node count
//
// returns the first problem found as a fault error or nil
func (tree *Tree[K, V]) Check() error {
	n, err := tree.check(tree.root, nil, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		if nil != tree.log {
			tree.log.Errorf("check: nodes: %d  count: %d", n, tree.count)
		}
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, lo and hi are the nearest ancestors
// that bound the keys of this sub-tree; returns the sub-tree size
func (tree *Tree[K, V]) check(p *Node[K, V], up *Node[K, V], lo *Node[K, V], hi *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.tree != tree {
		return 0, tree.fail(p, fault.ErrInvalidNodeInTree)
	}
	if p.up != up {
		return 0, tree.fail(p, fault.ErrParentLink)
	}
	if nil != lo && tree.compare(p.key, lo.key) <= 0 {
		return 0, tree.fail(p, fault.ErrKeyOrder)
	}
	if nil != hi && tree.compare(p.key, hi.key) >= 0 {
		return 0, tree.fail(p, fault.ErrKeyOrder)
	}

	nl, err := tree.check(p.child[left], p, lo, p)
	if nil != err {
		return 0, err
	}
	nr, err := tree.check(p.child[right], p, p, hi)
	if nil != err {
		return 0, err
	}

	hl := heightOf(p.child[left])
	hr := heightOf(p.child[right])
	if p.height != 1+max(hl, hr) {
		return 0, tree.fail(p, fault.ErrHeightMismatch)
	}
	if p.balance != hl-hr {
		return 0, tree.fail(p, fault.ErrBalanceMismatch)
	}
	if !p.isBalanced() {
		return 0, tree.fail(p, fault.ErrUnbalanced)
	}
	return 1 + nl + nr, nil
}

func (tree *Tree[K, V]) fail(p *Node[K, V], err error) error {
	if nil != tree.log {
		tree.log.Errorf("check: key: %v  height: %d  balance: %+d  error: %s", p.key, p.height, p.balance, err)
	}
	return err
}
