// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poll

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/frostworks/snowtrie/ids"
	"github.com/frostworks/snowtrie/utils/bag"
	"github.com/frostworks/snowtrie/utils/linked"
	"github.com/frostworks/snowtrie/utils/logging"
	"github.com/frostworks/snowtrie/utils/metric"
)

var (
	errFailedPollsMetric        = errors.New("failed to register polls metric")
	errFailedPollDurationMetric = errors.New("failed to register poll_duration metric")
)

type pollHolder interface {
	GetPoll() Poll
	StartTime() time.Time
}

type poll struct {
	Poll
	start time.Time
}

func (p poll) GetPoll() Poll {
	return p
}

func (p poll) StartTime() time.Time {
	return p.start
}

type set struct {
	log      logging.Logger
	numPolls prometheus.Gauge
	durPolls prometheus.Histogram
	factory  Factory
	// maps requestID -> poll
	polls *linked.Hashmap[uint32, pollHolder]
}

// NewSet returns a new empty set of polls
func NewSet(
	factory Factory,
	log logging.Logger,
	namespace string,
	reg prometheus.Registerer,
) (Set, error) {
	numPolls := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "polls",
		Help:      "Number of pending network polls",
	})
	if err := reg.Register(numPolls); err != nil {
		return nil, fmt.Errorf("%w: %s", errFailedPollsMetric, err)
	}

	durPolls := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "poll_duration",
		Help:      "Length of time the poll existed in milliseconds",
		Buckets:   metric.MillisecondsBuckets,
	})
	if err := reg.Register(durPolls); err != nil {
		return nil, fmt.Errorf("%w: %s", errFailedPollDurationMetric, err)
	}

	return &set{
		log:      log,
		numPolls: numPolls,
		durPolls: durPolls,
		factory:  factory,
		polls:    linked.NewHashmap[uint32, pollHolder](),
	}, nil
}

// Add to the current set of polls
// Returns true if the poll was registered correctly and the network sample
// should be made.
func (s *set) Add(requestID uint32, vdrs bag.Bag[ids.NodeID]) bool {
	if _, exists := s.polls.Get(requestID); exists {
		s.log.Debug("dropping poll",
			zap.String("reason", "duplicated request"),
			zap.Uint32("requestID", requestID),
		)
		return false
	}

	s.log.Verbo("creating poll",
		zap.Uint32("requestID", requestID),
		zap.Stringer("validators", &vdrs),
	)

	s.polls.Put(requestID, poll{
		Poll:  s.factory.New(vdrs), // create the new poll
		start: time.Now(),
	})
	s.numPolls.Inc() // increase the metrics
	return true
}

// Vote registers the connection's response to a query for [id]. If there was
// no query, or the response has already been registered, nothing is performed.
func (s *set) Vote(requestID uint32, vdr ids.NodeID, vote ids.ID) []bag.Bag[ids.ID] {
	holder, exists := s.polls.Get(requestID)
	if !exists {
		s.log.Verbo("dropping vote",
			zap.String("reason", "unknown poll"),
			zap.Stringer("validator", vdr),
			zap.Uint32("requestID", requestID),
		)
		return nil
	}

	p := holder.GetPoll()

	s.log.Verbo("processing vote",
		zap.Stringer("validator", vdr),
		zap.Uint32("requestID", requestID),
		zap.Stringer("vote", vote),
	)

	p.Vote(vdr, vote)
	if !p.Finished() {
		return nil
	}

	s.log.Verbo("poll finished",
		zap.Uint32("requestID", requestID),
		zap.Stringer("poll", p),
	)
	s.durPolls.Observe(float64(time.Since(holder.StartTime()).Milliseconds()))
	s.numPolls.Dec() // decrease the metrics

	return s.processFinishedPolls(requestID)
}

// Drop registers the connection's failure to respond to a query. If there was
// no query, or the response has already been registered, nothing is performed.
func (s *set) Drop(requestID uint32, vdr ids.NodeID) []bag.Bag[ids.ID] {
	holder, exists := s.polls.Get(requestID)
	if !exists {
		s.log.Verbo("dropping vote",
			zap.String("reason", "unknown poll"),
			zap.Stringer("validator", vdr),
			zap.Uint32("requestID", requestID),
		)
		return nil
	}

	s.log.Verbo("processing dropped vote",
		zap.Stringer("validator", vdr),
		zap.Uint32("requestID", requestID),
	)

	p := holder.GetPoll()

	p.Drop(vdr)
	if !p.Finished() {
		return nil
	}

	s.log.Verbo("poll finished",
		zap.Uint32("requestID", requestID),
		zap.Stringer("poll", p),
	)
	s.durPolls.Observe(float64(time.Since(holder.StartTime()).Milliseconds()))
	s.numPolls.Dec() // decrease the metrics

	return s.processFinishedPolls(requestID)
}

// processFinishedPolls checks for other finished polls and returns them all if
// finished
func (s *set) processFinishedPolls(requestID uint32) []bag.Bag[ids.ID] {
	// If this is not the oldest poll, the results can't be returned yet. The
	// poll will be returned when the older polls finish.
	if oldestRequestID, _, _ := s.polls.Oldest(); oldestRequestID != requestID {
		return nil
	}

	// this is the oldest poll that has just finished
	// iterate from oldest to newest
	var results []bag.Bag[ids.ID]
	iter := s.polls.NewIterator()
	for iter.Next() {
		holder := iter.Value()
		p := holder.GetPoll()
		if !p.Finished() {
			// since we're iterating from oldest to newest, if the next poll
			// has not finished, we can break and return what we have so far
			break
		}

		results = append(results, p.Result())
		s.polls.Delete(iter.Key())
	}

	// results will have values if this and possibly newer polls have finished
	return results
}

// Len returns the number of outstanding polls
func (s *set) Len() int {
	return s.polls.Len()
}

func (s *set) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("current polls: (Size = %d)", s.polls.Len()))
	iter := s.polls.NewIterator()
	for iter.Next() {
		requestID := iter.Key()
		p := iter.Value().GetPoll()
		sb.WriteString(fmt.Sprintf("\n    %d: %s", requestID, p.PrefixedString("    ")))
	}
	return sb.String()
}
