package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrAlreadyRunning возвращается при повторном запуске фида
var ErrAlreadyRunning = errors.New("poller: feed is already running")

// Cycle - одна итерация "получить и применить" для фида.
// ctx отменяется при остановке фида; результат нужно применять только
// если IsLatest(t) все еще true.
type Cycle func(ctx context.Context, t Ticket)

type agent struct {
	feed     Feed
	interval time.Duration
	cycle    Cycle
	ctx      context.Context
	cancel   context.CancelFunc
}

// Poller запускает по одному агенту на фид, каждый со своим интервалом.
// Такты, пришедшие во время выполнения цикла, пропускаются.
type Poller struct {
	logger *logrus.Logger
	seq    *Sequencer

	mu     sync.Mutex
	agents map[Feed]*agent
	wg     sync.WaitGroup
}

func New(logger *logrus.Logger) *Poller {
	return &Poller{
		logger: logger,
		seq:    NewSequencer(),
		agents: make(map[Feed]*agent),
	}
}

// Start запускает цикл сразу и затем каждые interval до вызова stop
func (p *Poller) Start(ctx context.Context, feed Feed, interval time.Duration, cycle Cycle) (stop func(), err error) {
	if interval <= 0 {
		return nil, fmt.Errorf("poller: interval for %s must be positive, got %v", feed, interval)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.agents[feed]; ok {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, feed)
	}

	agentCtx, cancel := context.WithCancel(ctx)
	a := &agent{
		feed:     feed,
		interval: interval,
		cycle:    cycle,
		ctx:      agentCtx,
		cancel:   cancel,
	}
	p.agents[feed] = a

	p.wg.Add(1)
	go p.run(a)

	return func() { p.Stop(feed) }, nil
}

// Stop останавливает фид. Повторный вызов ничего не делает.
func (p *Poller) Stop(feed Feed) {
	p.mu.Lock()
	a, ok := p.agents[feed]
	delete(p.agents, feed)
	p.mu.Unlock()

	if ok {
		a.cancel()
	}
}

// StopAll останавливает все фиды. Не ждет завершения запросов в полете, см. Wait.
func (p *Poller) StopAll() {
	p.mu.Lock()
	agents := p.agents
	p.agents = make(map[Feed]*agent)
	p.mu.Unlock()

	for _, a := range agents {
		a.cancel()
	}
}

// Wait ждет завершения всех агентов и внеплановых циклов
func (p *Poller) Wait() {
	p.wg.Wait()
}

// Kick запускает внеплановый цикл фида, не дожидаясь такта.
// Он может пересечься с плановым циклом, порядок применения решает Sequencer.
func (p *Poller) Kick(feed Feed) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	a, ok := p.agents[feed]
	if !ok {
		return false
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runCycle(a)
	}()
	return true
}

// Issue выдает номер для запроса вне агентов (центрирование, прогноз)
func (p *Poller) Issue(feed Feed) Ticket {
	return p.seq.Issue(feed)
}

// IsLatest проверяет, что t - последний выданный запрос своего фида
func (p *Poller) IsLatest(t Ticket) bool {
	return p.seq.IsLatest(t)
}

// Running сообщает, запущен ли фид
func (p *Poller) Running(feed Feed) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.agents[feed]
	return ok
}

func (p *Poller) run(a *agent) {
	defer p.wg.Done()

	log := p.logger.WithFields(logrus.Fields{"component": "poller", "feed": a.feed})
	log.WithField("interval", a.interval.String()).Info("Start poll agent")

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	p.runCycle(a)
	for {
		select {
		case <-a.ctx.Done():
			log.Info("Poll agent finished")
			return
		case <-ticker.C:
			p.runCycle(a)
		}
	}
}

func (p *Poller) runCycle(a *agent) {
	if a.ctx.Err() != nil {
		return
	}
	t := p.seq.Issue(a.feed)
	a.cycle(a.ctx, t)
}
