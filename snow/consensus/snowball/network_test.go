// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowball

import (
	"github.com/frostworks/snowtrie/ids"
	"github.com/frostworks/snowtrie/utils/bag"
	"github.com/frostworks/snowtrie/utils/sampler"
)

type newConsensusFunc func(params Parameters, choice ids.ID) Consensus

// Network simulates a network of nodes running snowball instances over a
// shared set of choices. It is used to test the convergence properties of the
// different consensus implementations.
type Network struct {
	params    Parameters
	colors    []ids.ID
	rngSource sampler.Source

	nodes, running []Consensus
}

func NewNetwork(params Parameters, numColors int, rngSource sampler.Source) *Network {
	n := &Network{
		params:    params,
		rngSource: rngSource,
	}
	for i := 0; i < numColors; i++ {
		n.colors = append(n.colors, ids.Empty.Prefix(uint64(i)))
	}
	return n
}

// AddNode adds a new consensus instance to the network with the colors added
// in a random order.
func (n *Network) AddNode(newConsensus newConsensusFunc) Consensus {
	s := sampler.NewDeterministicUniform(n.rngSource)
	s.Initialize(uint64(len(n.colors)))

	indices, _ := s.Sample(len(n.colors))

	consensus := newConsensus(n.params, n.colors[int(indices[0])])
	for _, index := range indices[1:] {
		consensus.Add(n.colors[int(index)])
	}

	n.nodes = append(n.nodes, consensus)
	if !consensus.Finalized() {
		n.running = append(n.running, consensus)
	}
	return consensus
}

// AddNodeSpecificColor adds a new consensus instance to the network that
// prefers [initialPreference] and has also seen [otherPreferences].
func (n *Network) AddNodeSpecificColor(
	newConsensus newConsensusFunc,
	initialPreference int,
	otherPreferences []int,
) Consensus {
	consensus := newConsensus(n.params, n.colors[initialPreference])
	for _, i := range otherPreferences {
		consensus.Add(n.colors[i])
	}

	n.nodes = append(n.nodes, consensus)
	if !consensus.Finalized() {
		n.running = append(n.running, consensus)
	}
	return consensus
}

func (n *Network) Finalized() bool {
	return len(n.running) == 0
}

// Round performs a single poll on a randomly selected running node by
// sampling K nodes from the network and collecting their preferences.
func (n *Network) Round() {
	if len(n.running) == 0 {
		return
	}

	s := sampler.NewDeterministicUniform(n.rngSource)
	s.Initialize(uint64(len(n.running)))
	runningInd, _ := s.Next()
	running := n.running[int(runningInd)]

	s.Initialize(uint64(len(n.nodes)))
	indices, _ := s.Sample(n.params.K)

	votes := bag.Bag[ids.ID]{}
	for _, index := range indices {
		peer := n.nodes[int(index)]
		votes.Add(peer.Preference())
	}

	running.RecordPoll(votes)
	if running.Finalized() {
		newSize := len(n.running) - 1
		n.running[int(runningInd)] = n.running[newSize]
		n.running = n.running[:newSize]
	}
}

// Agreement returns true if all the nodes in the network prefer the same
// choice.
func (n *Network) Agreement() bool {
	if len(n.nodes) == 0 {
		return true
	}
	preference := n.nodes[0].Preference()
	for _, node := range n.nodes {
		if preference != node.Preference() {
			return false
		}
	}
	return true
}
