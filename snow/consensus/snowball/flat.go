// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowball

import (
	"github.com/frostworks/snowtrie/ids"
	"github.com/frostworks/snowtrie/utils/bag"
)

var _ Consensus = (*Flat)(nil)

// NewFlat returns a new flat snowball instance with [choice] added as the
// only existing choice.
func NewFlat(params Parameters, choice ids.ID) Consensus {
	return &Flat{
		nnarySnowball: newNnarySnowball(
			params.BetaVirtuous,
			params.BetaRogue,
			choice,
		),
		params: params,
	}
}

// Flat is a naive implementation of a multi-choice snowball instance
type Flat struct {
	// wraps the n-nary snowball logic
	nnarySnowball

	// params contains all the configurations of a snowball instance
	params Parameters
}

func (f *Flat) Parameters() Parameters {
	return f.params
}

func (f *Flat) RecordPoll(votes bag.Bag[ids.ID]) bool {
	pollMode, numVotes := votes.Mode()
	if numVotes < f.params.Alpha {
		f.RecordUnsuccessfulPoll()
		return false
	}

	f.RecordSuccessfulPoll(pollMode)
	return true
}
