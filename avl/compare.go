// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// Comparator - order two keys: negative if a < b, zero if a == b and
// positive if a > b
//
// must be a pure total order, zero means the keys are the same key
type Comparator[K any] func(a K, b K) int

// Item - a key that can order itself against another key of the
// same type
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// ItemCompare - comparator for self-ordering keys
func ItemCompare(a Item, b Item) int {
	return a.Compare(b)
}

// comparator used when none is given: built-in numbers and strings
// by their natural order, Item keys by their own Compare
//
// any other key type is a caller error
func defaultCompare[K any](a K, b K) int {
	switch x := any(a).(type) {
	case Item:
		return x.Compare(any(b))
	case int:
		return ordered(x, b)
	case int8:
		return ordered(x, b)
	case int16:
		return ordered(x, b)
	case int32:
		return ordered(x, b)
	case int64:
		return ordered(x, b)
	case uint:
		return ordered(x, b)
	case uint8:
		return ordered(x, b)
	case uint16:
		return ordered(x, b)
	case uint32:
		return ordered(x, b)
	case uint64:
		return ordered(x, b)
	case uintptr:
		return ordered(x, b)
	case float32:
		return ordered(x, b)
	case float64:
		return ordered(x, b)
	case string:
		return ordered(x, b)
	}
	fault.Panicf("avl: no default ordering for key type: %T", a)
	return 0
}

func ordered[T cmp.Ordered](a T, b any) int {
	return cmp.Compare(a, b.(T))
}
