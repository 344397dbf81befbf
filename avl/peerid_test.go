// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"strings"
	"testing"

	p2pPeer "github.com/libp2p/go-libp2p-core/peer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
)

// peer IDs ordered by their printable form
func idCompare(ida p2pPeer.ID, idb p2pPeer.ID) int {
	return strings.Compare(ida.String(), idb.String())
}

func TestPeerIDKeys(t *testing.T) {
	IDKeys := []p2pPeer.ID{
		p2pPeer.ID("1000"),
		p2pPeer.ID("8133"),
		p2pPeer.ID("999"),
		p2pPeer.ID("4201"),
	}

	tree := avl.New[p2pPeer.ID, string](idCompare)
	tree.SetLog(testLog)
	for _, key := range IDKeys {
		require.NotNil(t, tree.Insert(key, "data:"+key.String()), "insert: %s", key)
	}
	require.NoError(t, tree.Check(), "inconsistent tree")
	assert.Nil(t, tree.Insert(p2pPeer.ID("1000"), "again"), "duplicate peer")

	for _, key := range IDKeys {
		node := tree.Search(key)
		require.NotNil(t, node, "search: %s", key)
		assert.Equal(t, key, node.Key(), "search: %s", key)
		assert.Equal(t, "data:"+key.String(), node.Value(), "value: %s", key)
	}

	value, ok := tree.Remove(IDKeys[0])
	assert.True(t, ok, "remove")
	assert.Equal(t, "data:"+IDKeys[0].String(), value, "removed value")
	assert.Equal(t, len(IDKeys)-1, tree.Count(), "count")
	assert.NoError(t, tree.Check(), "inconsistent tree")
}
