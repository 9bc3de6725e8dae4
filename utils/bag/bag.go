// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bag

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/frostworks/snowtrie/utils"
)

const minBagSize = 16

// Of returns a Bag initialized with [elts]
func Of[T comparable](elts ...T) Bag[T] {
	var b Bag[T]
	b.Add(elts...)
	return b
}

// Bag is a multiset.
type Bag[T comparable] struct {
	counts map[T]int
	size   int
}

func (b *Bag[T]) init() {
	if b.counts == nil {
		b.counts = make(map[T]int, minBagSize)
	}
}

// Add increases the number of times each element has been seen by one.
func (b *Bag[T]) Add(elts ...T) {
	for _, elt := range elts {
		b.AddCount(elt, 1)
	}
}

// AddCount increases the number of times the element has been seen by [count].
//
// If [count] <= 0 this is a no-op.
func (b *Bag[T]) AddCount(elt T, count int) {
	if count <= 0 {
		return
	}

	b.init()
	b.counts[elt] += count
	b.size += count
}

// Count returns the number of times the element has been added.
func (b *Bag[T]) Count(elt T) int {
	return b.counts[elt]
}

// Remove sets the count of the provided element to zero.
func (b *Bag[T]) Remove(elt T) {
	count := b.counts[elt]
	delete(b.counts, elt)
	b.size -= count
}

// Len returns the number of times an element has been added.
func (b *Bag[T]) Len() int {
	return b.size
}

// List returns a list of unique elements that have been added.
func (b *Bag[T]) List() []T {
	return maps.Keys(b.counts)
}

// Equals returns true if the bags contain the same elements
func (b *Bag[T]) Equals(other Bag[T]) bool {
	if b.size != other.size {
		return false
	}
	for elt, count := range b.counts {
		if count != other.counts[elt] {
			return false
		}
	}
	return true
}

// Mode returns the most common element in the bag and the count of that
// element. If there's a tie, any of the tied element may be returned.
func (b *Bag[T]) Mode() (T, int) {
	var (
		mode     T
		modeFreq int
	)
	for elt, count := range b.counts {
		if count > modeFreq {
			mode = elt
			modeFreq = count
		}
	}
	return mode, modeFreq
}

// Filter returns the bag of elements for which [filterFunc] returns true,
// along with their counts.
// For example, if X is in this bag with count 5, and filterFunc(X) returns
// true, then the returned bag contains X with count 5.
func (b *Bag[T]) Filter(filterFunc func(T) bool) Bag[T] {
	newBag := Bag[T]{}
	for elt, count := range b.counts {
		if filterFunc(elt) {
			newBag.AddCount(elt, count)
		}
	}
	return newBag
}

// Split returns a 2-element array of bags. The first bag contains the elements
// for which [splitFunc] returned false. The second bag contains the elements
// for which it returned true.
// For example, if X is in this bag with count 5, and splitFunc(X) is false,
// then the first returned bag has X with count 5.
func (b *Bag[T]) Split(splitFunc func(T) bool) [2]Bag[T] {
	splitVotes := [2]Bag[T]{}
	for elt, count := range b.counts {
		if splitFunc(elt) {
			splitVotes[1].AddCount(elt, count)
		} else {
			splitVotes[0].AddCount(elt, count)
		}
	}
	return splitVotes
}

func (b *Bag[T]) PrefixedString(prefix string) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Bag[%T]: (Size = %d)", utils.Zero[T](), b.Len()))
	for elt, count := range b.counts {
		sb.WriteString(fmt.Sprintf("\n%s    %v: %d", prefix, elt, count))
	}
	return sb.String()
}

func (b *Bag[T]) String() string {
	return b.PrefixedString("")
}
