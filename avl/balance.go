// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// walk up from n to the root refreshing cached heights and rotating
// away any ±2 balance, then record the node left at the top as root
func (tree *Tree[K, V]) restoreBalance(n *Node[K, V]) {
	n.update()
	for nil != n.up || !n.isBalanced() {
		switch n.balance {
		case +2: // left heavy
			if -1 == n.child[left].balance {
				tree.tracef("rotate: LR at key: %v", n.key)
				n.rotateOppositeSide(left)
			} else {
				tree.tracef("rotate: LL at key: %v", n.key)
			}
			n.rotateSameSide(left)
		case -2: // right heavy
			if +1 == n.child[right].balance {
				tree.tracef("rotate: RL at key: %v", n.key)
				n.rotateOppositeSide(right)
			} else {
				tree.tracef("rotate: RR at key: %v", n.key)
			}
			n.rotateSameSide(right)
		}
		if nil != n.up {
			n = n.up
			n.update()
		}
	}
	tree.root = n
}

// logging helpers, silent without a logger channel
func (tree *Tree[K, V]) tracef(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Tracef(format, arguments...)
	}
}

func (tree *Tree[K, V]) debugf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}
