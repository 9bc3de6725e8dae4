// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowball

import "fmt"

var _ fmt.Stringer = (*binarySlush)(nil)

// binarySlush is the implementation of a binary slush instance
type binarySlush struct {
	// preference is the choice that was voted for last time
	preference int
}

func (sl *binarySlush) Preference() int {
	return sl.preference
}

func (sl *binarySlush) RecordSuccessfulPoll(choice int) {
	sl.preference = choice
}

func (sl *binarySlush) String() string {
	return fmt.Sprintf("SL(Preference = %d)", sl.preference)
}
