// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers and cached heights, so that a node can be removed directly
// through its own handle
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are ordered by a comparator supplied when the tree is
// created.  The comparator must be a total order: an inconsistent
// comparator gives undefined tree structure and is not detected.
//
// Keys are unique; an insert with an existing key is rejected and
// leaves the tree unchanged.  Nodes never move in memory, so a node
// returned by Insert stays valid until it is removed, after which it
// is permanently invalid and all of its queries report absence.
package avl
