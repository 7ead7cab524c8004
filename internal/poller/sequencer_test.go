package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencer_LaterIssueWins(t *testing.T) {
	s := NewSequencer()

	first := s.Issue(FeedIncidents)
	second := s.Issue(FeedIncidents)

	// второй запрос завершился раньше первого
	assert.True(t, s.IsLatest(second))
	assert.False(t, s.IsLatest(first))
	assert.Greater(t, second.Seq, first.Seq)
}

func TestSequencer_FeedsAreIndependent(t *testing.T) {
	s := NewSequencer()

	incidents := s.Issue(FeedIncidents)
	agents := s.Issue(FeedAgents)
	s.Issue(FeedAgents)

	assert.True(t, s.IsLatest(incidents))
	assert.False(t, s.IsLatest(agents))
}

func TestSequencer_UnknownTicketIsNotLatest(t *testing.T) {
	s := NewSequencer()
	assert.False(t, s.IsLatest(Ticket{Feed: FeedStats, Seq: 3}))
}
