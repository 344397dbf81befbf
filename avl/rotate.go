// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single LL (side = left) or RR (side = right) rotation
//
// for LL with a = this node and b = a.left:
//
//	      a            b
//	     / \          / \
//	    b   aR  →   bL   a
//	   / \              / \
//	  bL  z            z   aR
//
// b takes the place of a under a's parent, or becomes parentless and
// the caller must make it the tree root
func (a *Node[K, V]) rotateSameSide(side int) {
	far := opposite(side)
	b := a.child[side]
	up := a.up

	a.connectChild(b.child[far], side)
	b.connectChild(a, far)
	if nil != up {
		up.connectChild(b, up.indexOf(a))
	} else {
		b.up = nil
	}
}

// LR (side = left) or RL (side = right) straightening rotation
//
// for LR with a = this node, b = a.left and c = b.right:
//
//	      a             a
//	     / \           / \
//	    b   aR        c   aR
//	   / \      →    / \
//	  bL  c         b   cR
//	     / \       / \
//	    cL  cR    bL  cL
//
// this turns the double imbalance into a single one, the caller
// finishes with rotateSameSide(side)
func (a *Node[K, V]) rotateOppositeSide(side int) {
	far := opposite(side)
	b := a.child[side]
	c := b.child[far]

	b.connectChild(c.child[side], far)
	c.connectChild(b, side)
	a.connectChild(c, side)
}

// exchange the tree positions of two nodes, leaving key and value
// in place: parent links, child links, the slots in the parents and
// the cached height and balance are all swapped
//
// when one node is the direct parent of the other a plain exchange
// would leave each pointing at itself, those links are redirected to
// the other node
//
// the tree root is not touched, if either node was the root the
// caller must repoint it
func (p *Node[K, V]) swapWith(q *Node[K, V]) {
	if p == q {
		return
	}

	// record the parent slots before anything moves
	pUp, qUp := p.up, q.up
	pSide, qSide := -1, -1
	if nil != pUp {
		pSide = pUp.indexOf(p)
	}
	if nil != qUp {
		qSide = qUp.indexOf(q)
	}

	p.up, q.up = q.up, p.up
	if p.up == p {
		p.up = q
	}
	if q.up == q {
		q.up = p
	}

	p.child, q.child = q.child, p.child
	p.adoptChildren(q)
	q.adoptChildren(p)

	if nil != pUp && pUp != q {
		pUp.child[pSide] = q
	}
	if nil != qUp && qUp != p {
		qUp.child[qSide] = p
	}

	p.height, q.height = q.height, p.height
	p.balance, q.balance = q.balance, p.balance
}

// after a swap: a slot holding the node itself really means the
// other node, and every child must point back up here
func (p *Node[K, V]) adoptChildren(other *Node[K, V]) {
	for side, c := range p.child {
		if c == p {
			c = other
			p.child[side] = c
		}
		if nil != c {
			c.up = p
		}
	}
}
