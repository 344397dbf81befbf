// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree[K, V]) Print(printData bool) int {
	return tree.Fprint(os.Stdout, printData)
}

// Fprint - write the ASCII graphic to w, returns the depth of the tree
func (tree *Tree[K, V]) Fprint(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", rootBranch, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[K any, V any](w io.Writer, tree *Node[K, V], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.child[right] {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, tree.child[right], prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %+2d/%d\n", tree.key, tree.value, up, tree.balance, tree.height)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", tree.key, up)
	}
	if nil != tree.child[left] {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, tree.child[left], prefix+t, leftBranch, printData)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
