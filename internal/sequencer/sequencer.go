// internal/sequencer/sequencer.go
package sequencer

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/model"
	"github.com/dairyking98/network-okidata/internal/transport"
)

// DefaultStepDelay spaces the four commit steps so the device receives
// them as separate transmissions a few milliseconds apart.
const DefaultStepDelay = 10 * time.Millisecond

// Commit tracks one line commit through its transmission phases.
type Commit struct {
	ID uuid.UUID

	mu    sync.RWMutex
	phase model.SequencePhase
	done  chan struct{}
}

// Phase returns the current sequence phase.
func (c *Commit) Phase() model.SequencePhase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

// Done is closed once the commit's last scheduled step has dispatched.
func (c *Commit) Done() <-chan struct{} {
	return c.done
}

func (c *Commit) setPhase(phase model.SequencePhase) {
	c.mu.Lock()
	c.phase = phase
	c.mu.Unlock()
}

// job is one scheduled transmission. A nil payload advances the commit
// phase without touching the sink (a zero-tab margin burst).
type job struct {
	due     time.Time
	seq     uint64
	payload []byte
	tag     string
	commit  *Commit
	phase   model.SequencePhase
	final   bool
}

// jobQueue is a min-heap ordered by due time, insertion order breaking
// ties so steps scheduled for the same instant dispatch FIFO.
type jobQueue []*job

func (q jobQueue) Len() int { return len(q) }

func (q jobQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q jobQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *jobQueue) Push(x interface{}) { *q = append(*q, x.(*job)) }

func (q *jobQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// Sequencer dispatches line-commit steps at fixed offsets on a single
// worker goroutine. Steps are time-driven, never acknowledgment-driven:
// the device sends nothing back, so each step fires on schedule whether
// or not the previous one succeeded. Nothing serializes one commit
// against another; rapid commits interleave in wall-clock order, which
// is a documented ordering hazard of the protocol rather than a bug to
// fix here.
type Sequencer struct {
	sink      transport.Sink
	logger    *zap.Logger
	stepDelay time.Duration

	mu    sync.Mutex
	queue jobQueue
	seq   uint64

	wake chan struct{}
	stop chan struct{}
	once sync.Once
}

// New creates a sequencer. A zero stepDelay uses DefaultStepDelay.
func New(sink transport.Sink, stepDelay time.Duration, logger *zap.Logger) *Sequencer {
	if stepDelay <= 0 {
		stepDelay = DefaultStepDelay
	}
	return &Sequencer{
		sink:      sink,
		logger:    logger.With(zap.String("component", "sequencer")),
		stepDelay: stepDelay,
		wake:      make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
}

// Start launches the dispatch worker.
func (s *Sequencer) Start() {
	go s.run()
}

// Stop halts the worker. Pending jobs are dropped.
func (s *Sequencer) Stop() {
	s.once.Do(func() { close(s.stop) })
}

// CommitLine schedules the four-step commit sequence for a finalized
// line: carriage return now, line feed one step later, the left-margin
// tab burst one step after that (each tab its own transmission), and,
// when includeText is set, the line text one step after the tabs. In
// live mode the text step is omitted since every character was already
// sent as it was typed.
func (s *Sequencer) CommitLine(text string, marginTabs int, includeText bool) *Commit {
	commit := &Commit{
		ID:    uuid.New(),
		phase: model.PhaseIdle,
		done:  make(chan struct{}),
	}

	cr := []byte{0x0D}
	lf := []byte{0x0A}
	ht := []byte{0x09}

	base := time.Now()

	s.mu.Lock()
	s.push(&job{due: base, payload: cr, tag: "[Carriage Return]", commit: commit, phase: model.PhaseSentCR})
	s.push(&job{due: base.Add(s.stepDelay), payload: lf, tag: "[Line Feed]", commit: commit, phase: model.PhaseSentLF})

	marginDue := base.Add(2 * s.stepDelay)
	if marginTabs <= 0 {
		s.push(&job{due: marginDue, commit: commit, phase: model.PhaseSentMargin, final: !includeText})
	} else {
		for i := 0; i < marginTabs; i++ {
			last := i == marginTabs-1
			s.push(&job{
				due:     marginDue,
				payload: ht,
				tag:     "[Left Margin]",
				commit:  commit,
				phase:   model.PhaseSentMargin,
				final:   last && !includeText,
			})
		}
	}

	if includeText {
		s.push(&job{
			due:     base.Add(3 * s.stepDelay),
			payload: []byte(text),
			tag:     "[Line Text]",
			commit:  commit,
			phase:   model.PhaseSentText,
			final:   true,
		})
	}
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}

	s.logger.Debug("Line commit scheduled",
		zap.String("commit_id", commit.ID.String()),
		zap.Int("margin_tabs", marginTabs),
		zap.Bool("include_text", includeText),
	)

	return commit
}

// push adds a job under s.mu.
func (s *Sequencer) push(j *job) {
	s.seq++
	j.seq = s.seq
	heap.Push(&s.queue, j)
}

// run is the dispatch loop: pop due jobs in order, sleep until the next
// one, wake early when new jobs arrive.
func (s *Sequencer) run() {
	for {
		s.mu.Lock()
		var wait time.Duration = -1
		for s.queue.Len() > 0 {
			next := s.queue[0]
			now := time.Now()
			if next.due.After(now) {
				wait = next.due.Sub(now)
				break
			}
			j := heap.Pop(&s.queue).(*job)
			s.mu.Unlock()
			s.dispatch(j)
			s.mu.Lock()
		}
		s.mu.Unlock()

		if wait < 0 {
			select {
			case <-s.wake:
			case <-s.stop:
				return
			}
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-s.wake:
			timer.Stop()
		case <-s.stop:
			timer.Stop()
			return
		}
	}
}

// dispatch sends one step. A failed step is logged and abandoned; the
// commit's remaining steps still fire on schedule.
func (s *Sequencer) dispatch(j *job) {
	if len(j.payload) > 0 {
		if err := s.sink.Send(context.Background(), j.payload, j.tag); err != nil {
			s.logger.Warn("Commit step failed",
				zap.String("commit_id", j.commit.ID.String()),
				zap.String("tag", j.tag),
				zap.Error(err),
			)
		}
	}

	j.commit.setPhase(j.phase)
	if j.final {
		j.commit.setPhase(model.PhaseIdle)
		close(j.commit.done)
	}
}
