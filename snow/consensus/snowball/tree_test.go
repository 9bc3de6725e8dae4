// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowball

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/frostworks/snowtrie/ids"
	"github.com/frostworks/snowtrie/utils/bag"
)

func TestSnowballConsistent(t *testing.T) {
	require := require.New(t)

	var (
		numColors        = 50
		numNodes         = 100
		params           = DefaultParameters
		seed      uint64 = 0
		source           = prng.NewMT19937()
	)

	source.Seed(seed)
	n := NewNetwork(params, numColors, source)

	for i := 0; i < numNodes; i++ {
		n.AddNode(NewTree)
	}

	for !n.Finalized() {
		n.Round()
	}

	require.True(n.Agreement())
}

func TestSnowballSingleton(t *testing.T) {
	require := require.New(t)

	params := Parameters{
		K:            1,
		Alpha:        1,
		BetaVirtuous: 2,
		BetaRogue:    5,
	}
	tree := NewTree(params, Red)

	require.False(tree.Finalized())

	oneRed := bag.Of(Red)
	require.True(tree.RecordPoll(oneRed))
	require.False(tree.Finalized())

	empty := bag.Bag[ids.ID]{}
	require.False(tree.RecordPoll(empty))
	require.False(tree.Finalized())

	require.True(tree.RecordPoll(oneRed))
	require.False(tree.Finalized())

	require.True(tree.RecordPoll(oneRed))
	require.True(tree.Finalized())
	require.Equal(Red, tree.Preference())

	// Adding a new choice after finalization should be a noop
	tree.Add(Blue)

	oneBlue := bag.Of(Blue)
	require.True(tree.RecordPoll(oneBlue))
	require.True(tree.Finalized())
	require.Equal(Red, tree.Preference())
}

func TestSnowballEmptyTree(t *testing.T) {
	require := require.New(t)

	tree := NewEmptyTree(DefaultParameters)
	require.Equal(ids.Empty, tree.Preference())
	require.Zero(tree.DecidedPrefix())
	require.False(tree.Finalized())
	require.False(tree.RecordPoll(bag.Of(Red)))
	require.Empty(tree.String())

	tree.Add(Red)
	require.Equal(Red, tree.Preference())
	require.Zero(tree.DecidedPrefix())
	require.False(tree.Finalized())
}

func TestSnowballRecordUnsuccessfulPoll(t *testing.T) {
	require := require.New(t)

	params := Parameters{
		K:            1,
		Alpha:        1,
		BetaVirtuous: 3,
		BetaRogue:    5,
	}
	tree := NewTree(params, Red)

	require.False(tree.Finalized())

	oneRed := bag.Of(Red)
	require.True(tree.RecordPoll(oneRed))

	tree.RecordUnsuccessfulPoll()

	require.True(tree.RecordPoll(oneRed))
	require.False(tree.Finalized())

	require.True(tree.RecordPoll(oneRed))
	require.False(tree.Finalized())

	require.True(tree.RecordPoll(oneRed))
	require.True(tree.Finalized())
	require.Equal(Red, tree.Preference())

	expected := "SB(NumSuccessfulPolls = 4, SF(Confidence = 3, Finalized = true)) Bits = [0, 256)"
	require.Equal(expected, tree.String())
}

func TestSnowballBinary(t *testing.T) {
	require := require.New(t)

	red := ids.ID{0x00}
	blue := ids.ID{0x01}

	params := Parameters{
		K:            2,
		Alpha:        2,
		BetaVirtuous: 1,
		BetaRogue:    2,
	}
	tree := NewTree(params, red)
	tree.Add(blue)

	require.Equal(red, tree.Preference())
	require.False(tree.Finalized())

	twoBlue := bag.Of(blue, blue)
	require.True(tree.RecordPoll(twoBlue))
	require.Equal(blue, tree.Preference())
	require.False(tree.Finalized())

	twoRed := bag.Of(red, red)
	require.True(tree.RecordPoll(twoRed))
	require.Equal(blue, tree.Preference())
	require.False(tree.Finalized())

	require.True(tree.RecordPoll(twoRed))
	require.Equal(red, tree.Preference())
	require.True(tree.Finalized())
}

func TestSnowballLastBinary(t *testing.T) {
	require := require.New(t)

	red := ids.Empty
	blue := ids.ID{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80,
	}

	params := Parameters{
		K:            1,
		Alpha:        1,
		BetaVirtuous: 2,
		BetaRogue:    2,
	}
	tree := NewTree(params, red)
	tree.Add(blue)

	// Should do nothing
	tree.Add(blue)

	expected := "SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [0, 255)\n" +
		"    SB(Preference = 0, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 0))) Bit = 255"
	require.Equal(expected, tree.String())
	require.Equal(red, tree.Preference())
	require.False(tree.Finalized())

	oneBlue := bag.Of(blue)
	require.True(tree.RecordPoll(oneBlue))
	require.Equal(blue, tree.Preference())
	require.False(tree.Finalized())

	require.True(tree.RecordPoll(oneBlue))
	require.Equal(blue, tree.Preference())
	require.True(tree.Finalized())

	expected = "SB(Preference = 1, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 2, SF(Confidence = 2, Finalized = true, SL(Preference = 1))) Bit = 255"
	require.Equal(expected, tree.String())
}

func TestSnowballAddPreviouslyRejected(t *testing.T) {
	require := require.New(t)

	red := ids.ID{0x00}   // 0b0000
	green := ids.ID{0x01} // 0b0001
	blue := ids.ID{0x02}  // 0b0010

	params := Parameters{
		K:            1,
		Alpha:        1,
		BetaVirtuous: 1,
		BetaRogue:    2,
	}
	tree := NewTree(params, red)
	tree.Add(blue)

	expected := "SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [0, 1)\n" +
		"    SB(Preference = 0, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 0))) Bit = 1\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [2, 256)\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [2, 256)"
	require.Equal(expected, tree.String())

	oneRed := bag.Of(red)
	require.True(tree.RecordPoll(oneRed))
	require.Equal(red, tree.Preference())
	require.False(tree.Finalized())

	// The first bit is now decided in favor of 0, so green was transitively
	// rejected and adding it must not modify the tree.
	tree.Add(green)

	expected = "SB(Preference = 0, NumSuccessfulPolls[0] = 1, NumSuccessfulPolls[1] = 0, SF(Confidence = 1, Finalized = false, SL(Preference = 0))) Bit = 1\n" +
		"    SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [2, 256)\n" +
		"    SB(NumSuccessfulPolls = 1, SF(Confidence = 1, Finalized = true)) Bits = [2, 256)"
	require.Equal(expected, tree.String())
	require.Equal(red, tree.Preference())
	require.False(tree.Finalized())
}

func TestSnowballDoubleAdd(t *testing.T) {
	require := require.New(t)

	red := ids.ID{0x00}

	params := Parameters{
		K:            1,
		Alpha:        1,
		BetaVirtuous: 3,
		BetaRogue:    5,
	}
	tree := NewTree(params, red)
	tree.Add(red)

	expected := "SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [0, 256)"
	require.Equal(expected, tree.String())
	require.Equal(red, tree.Preference())
	require.False(tree.Finalized())
}

func TestSnowballResetChild(t *testing.T) {
	require := require.New(t)

	red := ids.ID{0x00}
	blue := ids.ID{0x02}

	params := Parameters{
		K:            2,
		Alpha:        2,
		BetaVirtuous: 2,
		BetaRogue:    2,
	}
	tree := NewTree(params, red)
	tree.Add(blue)

	twoRed := bag.Of(red, red)
	require.True(tree.RecordPoll(twoRed))
	require.False(tree.Finalized())

	// An unsuccessful poll resets the confidence of the entire sub-tree, not
	// just of the root.
	oneRed := bag.Of(red)
	require.False(tree.RecordPoll(oneRed))
	require.False(tree.Finalized())

	require.True(tree.RecordPoll(twoRed))
	require.False(tree.Finalized())

	require.True(tree.RecordPoll(twoRed))
	require.True(tree.Finalized())
	require.Equal(red, tree.Preference())
}

func TestSnowballTrinary(t *testing.T) {
	require := require.New(t)

	red := ids.ID{0x00}   // 0b0000
	blue := ids.ID{0x01}  // 0b0001
	green := ids.ID{0x03} // 0b0011

	params := Parameters{
		K:            1,
		Alpha:        1,
		BetaVirtuous: 3,
		BetaRogue:    5,
	}
	tree := NewTree(params, red)
	tree.Add(blue)
	tree.Add(green)

	require.Equal(red, tree.Preference())
	require.False(tree.Finalized())

	oneBlue := bag.Of(blue)
	require.True(tree.RecordPoll(oneBlue))
	require.Equal(blue, tree.Preference())
	require.False(tree.Finalized())

	// A single red poll doesn't flip the preference back, as red and blue are
	// tied on successful polls.
	oneRed := bag.Of(red)
	require.True(tree.RecordPoll(oneRed))
	require.Equal(blue, tree.Preference())
	require.False(tree.Finalized())

	require.True(tree.RecordPoll(oneRed))
	require.Equal(red, tree.Preference())
	require.False(tree.Finalized())

	oneGreen := bag.Of(green)
	require.True(tree.RecordPoll(oneGreen))
	require.Equal(red, tree.Preference())
	require.False(tree.Finalized())

	for i := 0; i < 3; i++ {
		require.True(tree.RecordPoll(oneGreen))
		require.Equal(green, tree.Preference())
		require.False(tree.Finalized())
	}

	require.True(tree.RecordPoll(oneGreen))
	require.Equal(green, tree.Preference())
	require.True(tree.Finalized())
}

func TestSnowballFineGrained(t *testing.T) {
	require := require.New(t)

	c0000 := ids.ID{0x00}
	c1000 := ids.ID{0x01}
	c1100 := ids.ID{0x03}
	c0010 := ids.ID{0x04}

	params := Parameters{
		K:            1,
		Alpha:        1,
		BetaVirtuous: 1,
		BetaRogue:    2,
	}
	tree := NewTree(params, c0000)

	expected := "SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [0, 256)"
	require.Equal(expected, tree.String())
	require.Equal(c0000, tree.Preference())

	tree.Add(c1100)

	expected = "SB(Preference = 0, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 0))) Bit = 0\n" +
		"    SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [1, 256)\n" +
		"    SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [1, 256)"
	require.Equal(expected, tree.String())

	tree.Add(c1000)

	expected = "SB(Preference = 0, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 0))) Bit = 0\n" +
		"    SB(Preference = 1, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 1))) Bit = 1\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [2, 256)\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [2, 256)\n" +
		"    SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [1, 256)"
	require.Equal(expected, tree.String())

	tree.Add(c0010)

	expected = "SB(Preference = 0, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 0))) Bit = 0\n" +
		"    SB(Preference = 1, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 1))) Bit = 1\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [2, 256)\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [2, 256)\n" +
		"    SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [1, 2)\n" +
		"        SB(Preference = 0, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 0))) Bit = 2\n" +
		"            SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [3, 256)\n" +
		"            SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [3, 256)"
	require.Equal(expected, tree.String())

	oneC0000 := bag.Of(c0000)
	require.True(tree.RecordPoll(oneC0000))

	expected = "SB(Preference = 0, NumSuccessfulPolls[0] = 1, NumSuccessfulPolls[1] = 0, SF(Confidence = 1, Finalized = false, SL(Preference = 0))) Bit = 0\n" +
		"    SB(Preference = 1, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 1))) Bit = 1\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [2, 256)\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [2, 256)\n" +
		"    SB(Preference = 0, NumSuccessfulPolls[0] = 1, NumSuccessfulPolls[1] = 0, SF(Confidence = 1, Finalized = false, SL(Preference = 0))) Bit = 2\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [3, 256)\n" +
		"        SB(NumSuccessfulPolls = 1, SF(Confidence = 1, Finalized = true)) Bits = [3, 256)"
	require.Equal(expected, tree.String())
	require.Equal(c0000, tree.Preference())
	require.False(tree.Finalized())

	require.True(tree.RecordPoll(oneC0000))

	expected = "SB(NumSuccessfulPolls = 2, SF(Confidence = 2, Finalized = true)) Bits = [3, 256)"
	require.Equal(expected, tree.String())
	require.Equal(c0000, tree.Preference())
	require.True(tree.Finalized())
}

func TestSnowballFilterBinaryChildren(t *testing.T) {
	require := require.New(t)

	c0000 := ids.ID{0x00} // 0b0000
	c1000 := ids.ID{0x01} // 0b0001
	c0100 := ids.ID{0x02} // 0b0010
	c0010 := ids.ID{0x04} // 0b0100

	params := Parameters{
		K:            1,
		Alpha:        1,
		BetaVirtuous: 1,
		BetaRogue:    2,
	}
	tree := NewTree(params, c0000)
	tree.Add(c1000)
	tree.Add(c0010)

	expected := "SB(Preference = 0, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 0))) Bit = 0\n" +
		"    SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [1, 256)\n" +
		"    SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [1, 2)\n" +
		"        SB(Preference = 0, NumSuccessfulPolls[0] = 0, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 0))) Bit = 2\n" +
		"            SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [3, 256)\n" +
		"            SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [3, 256)"
	require.Equal(expected, tree.String())
	require.Equal(c0000, tree.Preference())
	require.False(tree.Finalized())

	oneC0000 := bag.Of(c0000)
	require.True(tree.RecordPoll(oneC0000))

	expected = "SB(Preference = 0, NumSuccessfulPolls[0] = 1, NumSuccessfulPolls[1] = 0, SF(Confidence = 1, Finalized = false, SL(Preference = 0))) Bit = 0\n" +
		"    SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [1, 256)\n" +
		"    SB(Preference = 0, NumSuccessfulPolls[0] = 1, NumSuccessfulPolls[1] = 0, SF(Confidence = 1, Finalized = false, SL(Preference = 0))) Bit = 2\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [3, 256)\n" +
		"        SB(NumSuccessfulPolls = 1, SF(Confidence = 1, Finalized = true)) Bits = [3, 256)"
	require.Equal(expected, tree.String())
	require.Equal(c0000, tree.Preference())
	require.False(tree.Finalized())

	// c0100 differs from c0000 at bit 1, which was transitively decided when
	// the unary node voting on [1, 2) finalized. Adding it must not modify the
	// tree.
	tree.Add(c0100)

	expected = "SB(Preference = 0, NumSuccessfulPolls[0] = 1, NumSuccessfulPolls[1] = 0, SF(Confidence = 1, Finalized = false, SL(Preference = 0))) Bit = 0\n" +
		"    SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [1, 256)\n" +
		"    SB(Preference = 0, NumSuccessfulPolls[0] = 1, NumSuccessfulPolls[1] = 0, SF(Confidence = 1, Finalized = false, SL(Preference = 0))) Bit = 2\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [3, 256)\n" +
		"        SB(NumSuccessfulPolls = 1, SF(Confidence = 1, Finalized = true)) Bits = [3, 256)"
	require.Equal(expected, tree.String())

	// A vote for c0100 counts towards deciding the first bit, but must be
	// filtered out before it reaches the sub-tree voting on bit 2.
	oneC0100 := bag.Of(c0100)
	require.True(tree.RecordPoll(oneC0100))

	expected = "SB(Preference = 0, NumSuccessfulPolls[0] = 1, NumSuccessfulPolls[1] = 0, SF(Confidence = 0, Finalized = false, SL(Preference = 0))) Bit = 2\n" +
		"    SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [3, 256)\n" +
		"    SB(NumSuccessfulPolls = 1, SF(Confidence = 1, Finalized = true)) Bits = [3, 256)"
	require.Equal(expected, tree.String())
	require.Equal(c0000, tree.Preference())
	require.False(tree.Finalized())
}

func TestSnowballAddRejectedWithLaterDifference(t *testing.T) {
	require := require.New(t)

	c0000 := ids.ID{0x00} // 0b0000
	c1000 := ids.ID{0x01} // 0b0001
	c0010 := ids.ID{0x04} // 0b0100
	c0111 := ids.ID{0x0e} // 0b1110

	params := Parameters{
		K:            1,
		Alpha:        1,
		BetaVirtuous: 1,
		BetaRogue:    2,
	}
	tree := NewEmptyTree(params)
	tree.Add(c0000)
	tree.Add(c1000)
	tree.Add(c0010)

	oneC0000 := bag.Of(c0000)
	require.True(tree.RecordPoll(oneC0000))

	expected := "SB(Preference = 0, NumSuccessfulPolls[0] = 1, NumSuccessfulPolls[1] = 0, SF(Confidence = 1, Finalized = false, SL(Preference = 0))) Bit = 0\n" +
		"    SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [1, 256)\n" +
		"    SB(Preference = 0, NumSuccessfulPolls[0] = 1, NumSuccessfulPolls[1] = 0, SF(Confidence = 1, Finalized = false, SL(Preference = 0))) Bit = 2\n" +
		"        SB(NumSuccessfulPolls = 0, SF(Confidence = 0, Finalized = false)) Bits = [3, 256)\n" +
		"        SB(NumSuccessfulPolls = 1, SF(Confidence = 1, Finalized = true)) Bits = [3, 256)"
	require.Equal(expected, tree.String())

	// c0111 was transitively rejected at bit 1 when the unary node voting on
	// [1, 2) finalized. Even though it also differs from c0010 at bit 3,
	// adding it must not split the sub-tree voting on [3, 256).
	tree.Add(c0111)
	require.Equal(expected, tree.String())
	require.Equal(c0000, tree.Preference())

	require.True(tree.RecordPoll(oneC0000))

	expected = "SB(NumSuccessfulPolls = 2, SF(Confidence = 2, Finalized = true)) Bits = [3, 256)"
	require.Equal(expected, tree.String())
	require.Equal(c0000, tree.Preference())
	require.Equal(3, tree.DecidedPrefix())
	require.True(tree.Finalized())
}

func TestSnowballAlternatingVotes(t *testing.T) {
	require := require.New(t)

	red := ids.ID{0x00}
	blue := ids.ID{0x01}

	params := Parameters{
		K:            1,
		Alpha:        1,
		BetaVirtuous: 2,
		BetaRogue:    2,
	}
	tree := NewTree(params, red)
	tree.Add(blue)

	oneRed := bag.Of(red)
	oneBlue := bag.Of(blue)

	// Each successful poll for the other color resets the snowflake
	// confidence, so the decision bit never finalizes.
	for i := 0; i < 50; i++ {
		require.True(tree.RecordPoll(oneRed))
		require.Equal(red, tree.Preference())
		require.False(tree.Finalized())

		require.True(tree.RecordPoll(oneBlue))
		require.False(tree.Finalized())
	}
}
