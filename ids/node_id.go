// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/frostworks/snowtrie/utils/cb58"
)

const (
	NodeIDPrefix = "NodeID-"
	NodeIDLen    = 20
)

var (
	EmptyNodeID = NodeID{}

	errShortNodeID         = errors.New("insufficient NodeID length")
	errMissingNodeIDPrefix = errors.New("missing the expected NodeID- prefix")
)

// NodeID identifies a peer that responds to network polls
type NodeID [NodeIDLen]byte

func (id NodeID) Bytes() []byte {
	return id[:]
}

func (id NodeID) String() string {
	// We assume that the maximum size of a byte slice that
	// can be stringified is at least the length of a node ID
	s, _ := cb58.Encode(id[:])
	return NodeIDPrefix + s
}

func (id NodeID) Less(other NodeID) bool {
	return bytes.Compare(id[:], other[:]) == -1
}

// ToNodeID attempt to convert a byte slice into a node id
func ToNodeID(bytes []byte) (NodeID, error) {
	nodeID := NodeID{}
	if length := len(bytes); length != NodeIDLen {
		return nodeID, fmt.Errorf("%w: expected %d bytes but got %d", errShortNodeID, NodeIDLen, length)
	}
	copy(nodeID[:], bytes)
	return nodeID, nil
}

// NodeIDFromString is the inverse of NodeID.String()
func NodeIDFromString(nodeIDStr string) (NodeID, error) {
	if !strings.HasPrefix(nodeIDStr, NodeIDPrefix) {
		return NodeID{}, errMissingNodeIDPrefix
	}
	bytes, err := cb58.Decode(strings.TrimPrefix(nodeIDStr, NodeIDPrefix))
	if err != nil {
		return NodeID{}, err
	}
	return ToNodeID(bytes)
}
