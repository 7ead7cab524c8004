package poller

import "sync"

// Feed - имя опрашиваемого (или разово запрашиваемого) источника данных
type Feed string

const (
	FeedIncidents Feed = "incidents"
	FeedAgents    Feed = "agents"
	FeedHistory   Feed = "history"
	FeedStats     Feed = "stats"
	// FeedCenter - дополнительный запрос агентов для центрирования карты
	FeedCenter Feed = "center"
	// FeedRisk - разовый запрос прогноза зон риска
	FeedRisk Feed = "risk"
)

// Ticket - номер запроса внутри фида
type Ticket struct {
	Feed Feed
	Seq  uint64
}

// Sequencer выдает монотонные номера запросов по фидам.
// Результат применяется, только если его запрос был выдан последним.
type Sequencer struct {
	mu     sync.Mutex
	issued map[Feed]uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{issued: make(map[Feed]uint64)}
}

// Issue регистрирует новый запрос для фида
func (s *Sequencer) Issue(feed Feed) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued[feed]++
	return Ticket{Feed: feed, Seq: s.issued[feed]}
}

// IsLatest сообщает, что после t для того же фида не выдавалось новых запросов
func (s *Sequencer) IsLatest(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issued[t.Feed] == t.Seq
}
