// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowball

import (
	"fmt"
	"strings"

	"github.com/frostworks/snowtrie/ids"
	"github.com/frostworks/snowtrie/utils/bag"
)

var _ Consensus = (*Tree)(nil)

// NewTree returns a new tree that is initialized with [choice] as the only
// existing choice.
func NewTree(params Parameters, choice ids.ID) Consensus {
	t := NewEmptyTree(params)
	t.Add(choice)
	return t
}

// NewEmptyTree returns a new tree with no choices added yet. Preference will
// report the empty ID until the first call to Add.
func NewEmptyTree(params Parameters) *Tree {
	return &Tree{
		params: params,
	}
}

// Tree implements the snowball interface by using a modified patricia tree.
type Tree struct {
	// params contains all the configurations of a snowball instance
	params Parameters

	// shouldReset is used as an optimization to prevent needless tree
	// traversals. If a snowball instance does not get an alpha majority, that
	// instance needs to reset by calling RecordUnsuccessfulPoll. Because the
	// tree splits votes based on the branch, when an instance doesn't get an
	// alpha majority none of the children of this instance can get an alpha
	// majority. To avoid calling RecordUnsuccessfulPoll on the full sub-tree
	// of a node that didn't get an alpha majority, shouldReset is used to
	// indicate that any later traversal into this sub-tree should call
	// RecordUnsuccessfulPoll before performing any other action.
	shouldReset bool

	// root is the node that represents the first snowball instance in the tree,
	// and contains references to all the other snowball instances in the tree.
	// It is nil until the first choice is added.
	root node
}

func (t *Tree) Parameters() Parameters {
	return t.params
}

func (t *Tree) Add(choice ids.ID) {
	if t.root == nil {
		snowball := newUnarySnowball(t.params.BetaVirtuous)
		t.root = &unaryNode{
			tree:         t,
			preference:   choice,
			commonPrefix: ids.NumBits,
			snowball:     &snowball,
		}
		return
	}

	prefix := t.root.DecidedPrefix()
	// Make sure that we haven't already decided against this new id
	if ids.EqualSubset(0, prefix, t.Preference(), choice) {
		t.root = t.root.Add(choice)
	}
}

func (t *Tree) Preference() ids.ID {
	if t.root == nil {
		return ids.Empty
	}
	return t.root.Preference()
}

// DecidedPrefix returns the number of bits of the preference that the tree has
// transitively decided
func (t *Tree) DecidedPrefix() int {
	if t.root == nil {
		return 0
	}
	return t.root.DecidedPrefix()
}

func (t *Tree) RecordPoll(votes bag.Bag[ids.ID]) bool {
	if t.root == nil {
		return false
	}

	// Get the assumed decided prefix of the root node.
	decidedPrefix := t.root.DecidedPrefix()

	// If any of the bits differ from the preference in this prefix, the vote
	// is for a rejected operation. So, we filter out these invalid votes.
	preference := t.Preference()
	filteredVotes := votes.Filter(func(id ids.ID) bool {
		return ids.EqualSubset(0, decidedPrefix, preference, id)
	})

	// Now that the votes have been restricted to valid votes, pass them into
	// the first snowball instance
	var successful bool
	t.root, successful = t.root.RecordPoll(filteredVotes, t.shouldReset)

	// Because we just passed the reset into the snowball instance, we should no
	// longer reset.
	t.shouldReset = false
	return successful
}

func (t *Tree) RecordUnsuccessfulPoll() {
	t.shouldReset = true
}

func (t *Tree) Finalized() bool {
	return t.root != nil && t.root.Finalized()
}

func (t *Tree) String() string {
	if t.root == nil {
		return ""
	}

	sb := strings.Builder{}

	prefixes := []string{""}
	nodes := []node{t.root}

	for len(prefixes) > 0 {
		newSize := len(prefixes) - 1

		prefix := prefixes[newSize]
		prefixes = prefixes[:newSize]

		n := nodes[newSize]
		nodes = nodes[:newSize]

		s, newNodes := n.Printable()

		sb.WriteString(prefix)
		sb.WriteString(s)
		sb.WriteString("\n")

		newPrefix := prefix + "    "
		for range newNodes {
			prefixes = append(prefixes, newPrefix)
		}
		nodes = append(nodes, newNodes...)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// node is a member of the patricia tree of snowball instances
type node interface {
	// Preference returns the preferred choice of this sub-tree
	Preference() ids.ID
	// DecidedPrefix returns the number of assumed decided bits of this node
	DecidedPrefix() int
	// Add a new choice to the tree
	Add(newChoice ids.ID) node
	// RecordPoll applies the votes provided to this tree and returns the
	// possibly modified tree along with a bool to indicate if the instance had
	// a successful poll
	RecordPoll(votes bag.Bag[ids.ID], reset bool) (node, bool)
	// Finalized returns true if consensus has been reached on this node
	Finalized() bool

	Printable() (string, []node)
}

// unaryNode is a node with either no children, or a single child. It handles
// the voting on a range of identical, virtuous, snowball instances.
type unaryNode struct {
	// tree references the tree that contains this node
	tree *Tree

	// preference is the choice that is preferred at every branch in this
	// sub-tree
	preference ids.ID

	// decidedPrefix is the last bit in the prefix that is assumed to be decided
	decidedPrefix int // Will be in the range [0, 255)

	// commonPrefix is the last bit in the prefix that this node transitively
	// references
	commonPrefix int // Will be in the range (decidedPrefix, 256)

	// snowball wraps the snowball logic
	snowball UnarySnowball

	// shouldReset is used as an optimization to prevent needless tree
	// traversals. It is the continuation of shouldReset in the Tree struct.
	shouldReset bool

	// child is the, possibly nil, node that votes on the next bits in the
	// decision
	child node
}

func (u *unaryNode) Preference() ids.ID {
	return u.preference
}

func (u *unaryNode) DecidedPrefix() int {
	return u.decidedPrefix
}

//nolint:gci,gofmt,gofumpt // this comment is formatted as intended
//
// This is by far the most complicated function in this codebase.
// The intuition is that this instance represents a series of consecutive unary
// snowball instances, and this function's purpose is convert one of these unary
// snowball instances into a binary snowball instance.
// There are 5 possible cases.
//
// 1. None of these instances need to be split
//   - In this case, the returned node is the same as this node, and the child
//     is updated with the new choice
//
// 2. This instance represents a series of only one unary instance and it must
//    be split
//   - This will return a binary choice, with one child the same as my child,
//     and another (possibly nil child) representing a new chain to the end of
//     the hash
//
// 3. This instance must be split on the first bit
//   - This will return a binary choice, with one child equal to this instance
//     with decidedPrefix increased by one, and another representing a new
//     chain to the end of the hash
//
// 4. This instance must be split on the last bit
//   - This will return this instance with commonPrefix decreased by one, and
//     the child will be a binary choice, with one child equal to this
//     instance's child, and another representing a new chain to the end of
//     the hash
//
// 5. This instance must be split on an interior bit
//   - This will return this instance with commonPrefix decreased to the bit
//     that was split on. The child will be a binary instance that has a child
//     equal to this instance from the split bit to the end of the prefix, and
//     another child representing a new chain to the end of the hash
func (u *unaryNode) Add(newChoice ids.ID) node {
	if u.Finalized() {
		return u // Only happens if the tree is finalized, or it's a leaf node
	}

	index, found := ids.FirstDifferenceSubset(
		u.decidedPrefix, u.commonPrefix, u.preference, newChoice)
	if !found {
		// If the first difference doesn't exist, then this node shouldn't be
		// split
		if u.child != nil {
			// Because this node will finalize before any children could
			// finalize, it must be that the newChoice will match my child's
			// prefix
			u.child = u.child.Add(newChoice)
		}
		// if u.child is nil, then we are attempting to add the same choice into
		// the tree, which should be a noop
	} else {
		// The difference was found, so this node must be split

		bit := u.preference.Bit(uint(index)) // The currently preferred bit
		b := &binaryNode{
			tree:        u.tree,
			bit:         index,
			snowball:    u.snowball.Extend(u.tree.params.BetaRogue, bit),
			shouldReset: [2]bool{u.shouldReset, u.shouldReset},
		}
		b.preferences[bit] = u.preference
		b.preferences[1-bit] = newChoice

		newChildSnowball := newUnarySnowball(u.tree.params.BetaVirtuous)
		newChild := &unaryNode{
			tree:          u.tree,
			preference:    newChoice,
			decidedPrefix: index + 1,   // The new child assumes this branch has decided in it's favor
			commonPrefix:  ids.NumBits, // The new child has no conflicts under this branch
			snowball:      &newChildSnowball,
		}

		switch {
		case u.decidedPrefix == u.commonPrefix-1:
			// This node was only voting over one bit. (Case 2. from above)
			b.children[bit] = u.child
			// The other child must have a nil child as well here
			if u.child != nil {
				b.children[1-bit] = newChild
			}

			// Return the new binary choice
			return b
		case index == u.decidedPrefix:
			// This node was split on the first bit. (Case 3. from above)
			u.decidedPrefix++
			b.children[bit] = u
			b.children[1-bit] = newChild

			// Return the new binary choice
			return b
		case index == u.commonPrefix-1:
			// This node was split on the last bit. (Case 4. from above)
			u.commonPrefix--
			b.children[bit] = u.child
			// The other child must have a nil child as well here
			if u.child != nil {
				b.children[1-bit] = newChild
			}
			u.child = b

			// Return this node
			return u
		default:
			// This node was split on an interior bit. (Case 5. from above)
			originalDecidedPrefix := u.decidedPrefix
			u.decidedPrefix = index + 1
			b.children[bit] = u
			b.children[1-bit] = newChild

			// Return a new unary node that votes over the prefix before the
			// split, with the binary node as its child. Both segments share
			// the same poll history, so the snowball state is cloned.
			return &unaryNode{
				tree:          u.tree,
				preference:    u.preference,
				decidedPrefix: originalDecidedPrefix,
				commonPrefix:  index,
				snowball:      u.snowball.Clone(),
				child:         b,
				shouldReset:   u.shouldReset,
			}
		}
	}
	return u // Do nothing, the choice was already rejected
}

func (u *unaryNode) RecordPoll(votes bag.Bag[ids.ID], reset bool) (node, bool) {
	// We are guaranteed that the votes are of IDs that have previously been
	// added. This ensures that the provided votes all have the same bits in the
	// range [u.decidedPrefix, u.commonPrefix) as in u.preference.

	// If my parent didn't get enough votes previously, then neither did I
	if reset {
		u.snowball.RecordUnsuccessfulPoll()
		u.shouldReset = true // Make sure my child is also reset correctly
	}

	if votes.Len() < u.tree.params.Alpha {
		// I didn't get enough votes
		u.snowball.RecordUnsuccessfulPoll()
		// I must reset my child from now on
		u.shouldReset = true
		return u, false
	}

	// I got enough votes this time
	u.snowball.RecordSuccessfulPoll()

	if u.child != nil {
		// We are guaranteed that u.commonPrefix will equal
		// u.child.DecidedPrefix(). Otherwise, there must have been a
		// decision under this node, which isn't possible because
		// beta1 <= beta2. That means that filtering the votes between
		// u.commonPrefix and u.child.DecidedPrefix() would always result in
		// the same set being returned.

		newChild, _ := u.child.RecordPoll(votes, u.shouldReset)
		if u.Finalized() {
			// If I'm now finalized, return my child
			return newChild, true
		}
		u.child = newChild
		// The child's preference may have changed
		u.preference = u.child.Preference()
	}
	// Now that I have passed my reset to my child, I don't need to reset them
	// anymore
	u.shouldReset = false
	return u, true
}

func (u *unaryNode) Finalized() bool {
	return u.snowball.Finalized()
}

func (u *unaryNode) Printable() (string, []node) {
	s := fmt.Sprintf("%s Bits = [%d, %d)",
		u.snowball, u.decidedPrefix, u.commonPrefix)
	if u.child == nil {
		return s, nil
	}
	return s, []node{u.child}
}

// binaryNode is a node with exactly two children. It handles the voting of a
// single, rogue, snowball instance.
type binaryNode struct {
	// tree references the tree that contains this node
	tree *Tree

	// preferences are the choices that are preferred at every branch in their
	// sub-tree
	preferences [2]ids.ID

	// bit is the index in the id of the choice this node is deciding on
	bit int // Will be in the range [0, 256)

	// snowball wraps the snowball logic
	snowball BinarySnowball

	// shouldReset is used as an optimization to prevent needless tree
	// traversals. It is the continuation of shouldReset in the Tree struct.
	shouldReset [2]bool

	// children are the, possibly nil, nodes that vote on the next bits in the
	// decision
	children [2]node
}

func (b *binaryNode) Preference() ids.ID {
	return b.preferences[b.snowball.Preference()]
}

func (b *binaryNode) DecidedPrefix() int {
	return b.bit
}

func (b *binaryNode) Add(id ids.ID) node {
	bit := id.Bit(uint(b.bit))
	// If child is nil, then the id...bit+1 is already decided. So there isn't a
	// need to modify the tree. If the id differs from the preference in the
	// range the child assumes is decided, then the id was transitively
	// rejected and must not be added to the child.
	if child := b.children[bit]; child != nil &&
		ids.EqualSubset(b.bit+1, child.DecidedPrefix(), b.preferences[bit], id) {
		b.children[bit] = child.Add(id)
	}
	return b
}

func (b *binaryNode) RecordPoll(votes bag.Bag[ids.ID], reset bool) (node, bool) {
	// The list of votes we are passed is split into votes for bit 0 and votes
	// for bit 1
	splitVotes := votes.Split(func(id ids.ID) bool {
		return id.Bit(uint(b.bit)) == 1
	})

	bit := 0
	// We only care about which bit is set if a successful poll can happen
	if splitVotes[1].Len() >= b.tree.params.Alpha {
		bit = 1
	}

	if reset {
		b.snowball.RecordUnsuccessfulPoll()
		b.shouldReset[bit] = true
		// 1-bit isn't set here because it is set below anyway
	}
	b.shouldReset[1-bit] = true // They didn't get the alpha threshold

	prunedVotes := splitVotes[bit]
	if prunedVotes.Len() < b.tree.params.Alpha {
		b.snowball.RecordUnsuccessfulPoll()
		// The winning child didn't get enough votes either
		b.shouldReset[bit] = true
		return b, false
	}

	b.snowball.RecordSuccessfulPoll(bit)

	if child := b.children[bit]; child != nil {
		// The votes are filtered to ensure that they are votes that should
		// count for the child
		decidedPrefix := child.DecidedPrefix()
		filteredVotes := prunedVotes.Filter(func(id ids.ID) bool {
			return ids.EqualSubset(b.bit+1, decidedPrefix, b.preferences[bit], id)
		})

		newChild, _ := child.RecordPoll(filteredVotes, b.shouldReset[bit])
		if b.snowball.Finalized() {
			// If I'm finalized, only track the newChild. The newChild is the
			// node in the tree that represents the next choice to be decided.
			return newChild, true
		}
		b.children[bit] = newChild
		// The child's preference may have changed
		b.preferences[bit] = newChild.Preference()
	}
	// Now that I have passed my reset to my child, I don't need to reset them
	// anymore
	b.shouldReset[bit] = false
	return b, true
}

func (b *binaryNode) Finalized() bool {
	return b.snowball.Finalized()
}

func (b *binaryNode) Printable() (string, []node) {
	s := fmt.Sprintf("%s Bit = %d", b.snowball, b.bit)
	newNodes := make([]node, 0, 2)
	if b.children[0] != nil {
		newNodes = append(newNodes, b.children[0])
	}
	if b.children[1] != nil {
		newNodes = append(newNodes, b.children[1])
	}
	return s, newNodes
}
