// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowball

import "github.com/frostworks/snowtrie/ids"

var (
	TreeFactory Factory = treeFactory{}
	FlatFactory Factory = flatFactory{}
)

// Factory returns new instances of Consensus
type Factory interface {
	New(params Parameters, choice ids.ID) Consensus
}

type treeFactory struct{}

func (treeFactory) New(params Parameters, choice ids.ID) Consensus {
	return NewTree(params, choice)
}

type flatFactory struct{}

func (flatFactory) New(params Parameters, choice ids.ID) Consensus {
	return NewFlat(params, choice)
}
