// internal/sequencer/sequencer_test.go
package sequencer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/model"
)

type recordedSend struct {
	payload []byte
	tag     string
	at      time.Time
}

type recordingSink struct {
	mu    sync.Mutex
	sends []recordedSend
	fail  map[string]error
}

func (r *recordingSink) Send(_ context.Context, payload []byte, tag string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	buf := make([]byte, len(payload))
	copy(buf, payload)
	r.sends = append(r.sends, recordedSend{payload: buf, tag: tag, at: time.Now()})
	if r.fail != nil {
		if err, ok := r.fail[tag]; ok {
			return err
		}
	}
	return nil
}

func (r *recordingSink) all() []recordedSend {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]recordedSend, len(r.sends))
	copy(out, r.sends)
	return out
}

func waitDone(t *testing.T, c *Commit) {
	t.Helper()
	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("commit %s did not complete", c.ID)
	}
}

func TestCommitLineSendsFourSteps(t *testing.T) {
	sink := &recordingSink{}
	seq := New(sink, 5*time.Millisecond, zap.NewNop())
	seq.Start()
	defer seq.Stop()

	commit := seq.CommitLine("HELLO", 2, true)
	waitDone(t, commit)

	sends := sink.all()
	if len(sends) != 5 {
		t.Fatalf("sends = %d, want 5", len(sends))
	}

	expected := []struct {
		tag     string
		payload []byte
	}{
		{"[Carriage Return]", []byte{0x0D}},
		{"[Line Feed]", []byte{0x0A}},
		{"[Left Margin]", []byte{0x09}},
		{"[Left Margin]", []byte{0x09}},
		{"[Line Text]", []byte("HELLO")},
	}
	for i, want := range expected {
		got := sends[i]
		if got.tag != want.tag {
			t.Errorf("send %d tag = %q, want %q", i, got.tag, want.tag)
		}
		if string(got.payload) != string(want.payload) {
			t.Errorf("send %d payload = % X, want % X", i, got.payload, want.payload)
		}
	}

	if commit.Phase() != model.PhaseIdle {
		t.Errorf("phase after completion = %q, want %q", commit.Phase(), model.PhaseIdle)
	}
}

func TestCommitLineStepSpacing(t *testing.T) {
	sink := &recordingSink{}
	delay := 20 * time.Millisecond
	seq := New(sink, delay, zap.NewNop())
	seq.Start()
	defer seq.Stop()

	commit := seq.CommitLine("A", 1, true)
	waitDone(t, commit)

	sends := sink.all()
	if len(sends) != 4 {
		t.Fatalf("sends = %d, want 4", len(sends))
	}

	// Each step fires one delay after the previous. Allow generous slack
	// for scheduler jitter but reject anything under the nominal gap.
	for i := 1; i < len(sends); i++ {
		gap := sends[i].at.Sub(sends[i-1].at)
		if gap < delay-5*time.Millisecond {
			t.Errorf("gap %d->%d = %v, want >= %v", i-1, i, gap, delay)
		}
	}
}

func TestCommitLineZeroTabsSkipsMarginSends(t *testing.T) {
	sink := &recordingSink{}
	seq := New(sink, 5*time.Millisecond, zap.NewNop())
	seq.Start()
	defer seq.Stop()

	commit := seq.CommitLine("X", 0, true)
	waitDone(t, commit)

	sends := sink.all()
	if len(sends) != 3 {
		t.Fatalf("sends = %d, want 3", len(sends))
	}
	for _, s := range sends {
		if s.tag == "[Left Margin]" {
			t.Errorf("unexpected margin send with zero tabs")
		}
	}
}

func TestCommitLineLiveModeOmitsText(t *testing.T) {
	sink := &recordingSink{}
	seq := New(sink, 5*time.Millisecond, zap.NewNop())
	seq.Start()
	defer seq.Stop()

	commit := seq.CommitLine("ALREADY SENT", 1, false)
	waitDone(t, commit)

	sends := sink.all()
	if len(sends) != 3 {
		t.Fatalf("sends = %d, want 3", len(sends))
	}
	for _, s := range sends {
		if s.tag == "[Line Text]" {
			t.Errorf("text step dispatched in live mode")
		}
	}
}

func TestCommitLineFailedStepDoesNotCancelLaterSteps(t *testing.T) {
	sink := &recordingSink{
		fail: map[string]error{"[Line Feed]": errors.New("connection refused")},
	}
	seq := New(sink, 5*time.Millisecond, zap.NewNop())
	seq.Start()
	defer seq.Stop()

	commit := seq.CommitLine("HELLO", 1, true)
	waitDone(t, commit)

	sends := sink.all()
	if len(sends) != 4 {
		t.Fatalf("sends = %d, want 4 despite line feed failure", len(sends))
	}
	if sends[3].tag != "[Line Text]" {
		t.Errorf("last send tag = %q, want [Line Text]", sends[3].tag)
	}
}

func TestRapidCommitsInterleaveByDueTime(t *testing.T) {
	sink := &recordingSink{}
	seq := New(sink, 30*time.Millisecond, zap.NewNop())
	seq.Start()
	defer seq.Stop()

	first := seq.CommitLine("ONE", 0, true)
	time.Sleep(10 * time.Millisecond)
	second := seq.CommitLine("TWO", 0, true)

	waitDone(t, first)
	waitDone(t, second)

	sends := sink.all()
	if len(sends) != 6 {
		t.Fatalf("sends = %d, want 6", len(sends))
	}
	// The second commit's carriage return lands between the first
	// commit's steps. Steps still dispatch in due-time order.
	if sends[0].tag != "[Carriage Return]" || sends[1].tag != "[Carriage Return]" {
		t.Errorf("first two sends = %q, %q; want interleaved carriage returns",
			sends[0].tag, sends[1].tag)
	}
}
