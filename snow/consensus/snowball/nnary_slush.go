// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowball

import (
	"fmt"

	"github.com/frostworks/snowtrie/ids"
)

var _ fmt.Stringer = (*nnarySlush)(nil)

func newNnarySlush(choice ids.ID) nnarySlush {
	return nnarySlush{
		preference: choice,
	}
}

// nnarySlush is the implementation of a slush instance with an unbounded
// number of choices
type nnarySlush struct {
	// preference is the choice that was voted for last time
	preference ids.ID
}

func (sl *nnarySlush) Preference() ids.ID {
	return sl.preference
}

func (sl *nnarySlush) RecordSuccessfulPoll(choice ids.ID) {
	sl.preference = choice
}

func (sl *nnarySlush) String() string {
	return fmt.Sprintf("SL(Preference = %s)", sl.preference)
}
