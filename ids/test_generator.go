// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import "github.com/frostworks/snowtrie/utils"

// GenerateTestID returns a new ID that should only be used for testing
func GenerateTestID() ID {
	id := ID{}
	copy(id[:], utils.RandomBytes(IDLen))
	return id
}

// GenerateTestNodeID returns a new NodeID that should only be used for testing
func GenerateTestNodeID() NodeID {
	nodeID := NodeID{}
	copy(nodeID[:], utils.RandomBytes(NodeIDLen))
	return nodeID
}
