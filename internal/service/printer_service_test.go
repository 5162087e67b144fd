// internal/service/printer_service_test.go
package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/model"
	"github.com/dairyking98/network-okidata/internal/sequencer"
	"github.com/dairyking98/network-okidata/internal/session"
	"github.com/dairyking98/network-okidata/internal/utils"
)

type capturedSend struct {
	payload []byte
	tag     string
}

type captureSink struct {
	mu    sync.Mutex
	sends []capturedSend
	err   error
}

func (c *captureSink) Send(_ context.Context, payload []byte, tag string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	buf := make([]byte, len(payload))
	copy(buf, payload)
	c.sends = append(c.sends, capturedSend{payload: buf, tag: tag})
	return c.err
}

func (c *captureSink) all() []capturedSend {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]capturedSend, len(c.sends))
	copy(out, c.sends)
	return out
}

func defaultSettings(mode model.Mode) model.SessionSettings {
	return model.SessionSettings{
		CPI:             "10 cpi",
		Font:            "Block Graphic Set",
		Spacing:         "1/6",
		SpacingN:        9,
		Quality:         "HSD/SSD",
		Speed:           "Full",
		Zero:            "Slashed Zero",
		SkipPerforation: 0,
		LeftMarginTabs:  0,
		RightMarginIn:   7.5,
		Mode:            mode,
	}
}

func newTestService(t *testing.T, mode model.Mode, sink *captureSink) *PrinterService {
	t.Helper()
	svc := &PrinterService{
		state:     session.NewState(defaultSettings(mode)),
		sink:      sink,
		sequencer: sequencer.New(sink, 2*time.Millisecond, zap.NewNop()),
		logger:    zap.NewNop(),
		plog:      utils.NewPrinterLogger(zap.NewNop(), "tcp"),
		host:      "192.168.1.200",
		port:      "9100",
	}
	svc.Start()
	t.Cleanup(svc.Stop)
	return svc
}

func TestSendKeystrokeLiveMode(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLive, sink)

	if err := svc.SendKeystroke(context.Background(), "H"); err != nil {
		t.Fatalf("SendKeystroke() error = %v", err)
	}

	sends := sink.all()
	if len(sends) != 1 {
		t.Fatalf("sends = %d, want 1", len(sends))
	}
	if string(sends[0].payload) != "H" || sends[0].tag != "[Live Keystroke]" {
		t.Errorf("send = %q tag %q, want H with [Live Keystroke]", sends[0].payload, sends[0].tag)
	}
}

func TestSendKeystrokeRejectedInLineMode(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLineByLine, sink)

	err := svc.SendKeystroke(context.Background(), "H")
	if !errors.Is(err, ErrNotLiveMode) {
		t.Fatalf("SendKeystroke() error = %v, want ErrNotLiveMode", err)
	}
	if len(sink.all()) != 0 {
		t.Errorf("keystroke transmitted despite line mode")
	}
}

func TestCommitLineIncludesTextInLineMode(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLineByLine, sink)

	if err := svc.ApplySetting(context.Background(), "left_margin", "", 2, 0); err != nil {
		t.Fatalf("ApplySetting(left_margin) error = %v", err)
	}

	commit := svc.CommitLine("HELLO")
	select {
	case <-commit.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("commit did not complete")
	}

	sends := sink.all()
	wantTags := []string{"[Carriage Return]", "[Line Feed]", "[Left Margin]", "[Left Margin]", "[Line Text]"}
	if len(sends) != len(wantTags) {
		t.Fatalf("sends = %d, want %d", len(sends), len(wantTags))
	}
	for i, tag := range wantTags {
		if sends[i].tag != tag {
			t.Errorf("send %d tag = %q, want %q", i, sends[i].tag, tag)
		}
	}
	if string(sends[4].payload) != "HELLO" {
		t.Errorf("text payload = %q, want HELLO", sends[4].payload)
	}
}

func TestCommitLineOmitsTextInLiveMode(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLive, sink)

	commit := svc.CommitLine("HELLO")
	select {
	case <-commit.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("commit did not complete")
	}

	for _, s := range sink.all() {
		if s.tag == "[Line Text]" {
			t.Errorf("text step transmitted in live mode")
		}
	}
}

func TestSetToggleTransmitsCommand(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLineByLine, sink)

	if err := svc.SetToggle(context.Background(), model.FeatureUnderline, true); err != nil {
		t.Fatalf("SetToggle() error = %v", err)
	}

	sends := sink.all()
	if len(sends) != 1 {
		t.Fatalf("sends = %d, want 1", len(sends))
	}
	want := []byte{0x1B, 0x2D, 0x01}
	if string(sends[0].payload) != string(want) {
		t.Errorf("payload = % X, want % X", sends[0].payload, want)
	}
	if sends[0].tag != "[Underline Printing]" {
		t.Errorf("tag = %q", sends[0].tag)
	}

	snap := svc.Session()
	if !snap.Toggles[model.FeatureUnderline] {
		t.Errorf("underline toggle not stored")
	}
}

func TestApplySettingCPI(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLineByLine, sink)

	if err := svc.ApplySetting(context.Background(), "cpi", "12 cpi", 0, 0); err != nil {
		t.Fatalf("ApplySetting(cpi) error = %v", err)
	}

	sends := sink.all()
	if len(sends) != 1 || string(sends[0].payload) != string([]byte{0x1C}) {
		t.Fatalf("cpi payload = %+v, want single 1C", sends)
	}
	if svc.Session().Settings.CPI != "12 cpi" {
		t.Errorf("cpi setting not stored")
	}
}

func TestApplySettingLocalOnly(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLineByLine, sink)

	if err := svc.ApplySetting(context.Background(), "right_margin", "", 0, 6.0); err != nil {
		t.Fatalf("ApplySetting(right_margin) error = %v", err)
	}
	if err := svc.ApplySetting(context.Background(), "mode", "LIVE", 0, 0); err != nil {
		t.Fatalf("ApplySetting(mode) error = %v", err)
	}

	if len(sink.all()) != 0 {
		t.Errorf("local settings produced transmissions")
	}
	snap := svc.Session()
	if snap.Settings.RightMarginIn != 6.0 || snap.Settings.Mode != model.ModeLive {
		t.Errorf("settings not stored: %+v", snap.Settings)
	}
}

func TestApplySettingUnknownName(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLineByLine, sink)

	if err := svc.ApplySetting(context.Background(), "paper_width", "", 0, 0); err == nil {
		t.Errorf("ApplySetting() accepted unknown setting")
	}
}

func TestSendCommandFixed(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLineByLine, sink)

	if err := svc.SendCommand(context.Background(), "Form Feed", nil); err != nil {
		t.Fatalf("SendCommand() error = %v", err)
	}

	sends := sink.all()
	if len(sends) != 1 || string(sends[0].payload) != string([]byte{0x0C}) {
		t.Fatalf("form feed payload wrong: %+v", sends)
	}
	if sends[0].tag != "[Form Feed]" {
		t.Errorf("tag = %q", sends[0].tag)
	}
}

func TestSendCommandParametric(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLineByLine, sink)

	if err := svc.SendCommand(context.Background(), "Set Spacing to n/144", nil); err == nil {
		t.Errorf("SendCommand() accepted parametric command without parameter")
	}

	n := 9
	if err := svc.SendCommand(context.Background(), "Set Spacing to n/144", &n); err != nil {
		t.Fatalf("SendCommand() error = %v", err)
	}

	sends := sink.all()
	want := []byte{0x1B, 0x25, 0x39, 0x09}
	if len(sends) != 1 || string(sends[0].payload) != string(want) {
		t.Fatalf("spacing payload = %+v, want % X", sends, want)
	}
}

func TestSendCommandUnknownName(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLineByLine, sink)

	err := svc.SendCommand(context.Background(), "Set Paper Width", nil)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("SendCommand() error = %v, want ErrUnknownCommand", err)
	}
	if len(sink.all()) != 0 {
		t.Errorf("unknown command produced a transmission")
	}
}

func TestPushDefaultsOrderAndResilience(t *testing.T) {
	sink := &captureSink{err: errors.New("connection refused")}
	svc := newTestService(t, model.ModeLineByLine, sink)

	if err := svc.PushDefaults(context.Background()); err == nil {
		t.Errorf("PushDefaults() should surface the first send error")
	}

	sends := sink.all()
	wantTags := []string{
		"[Restore Defaults]", "[Character Set]", "[Spacing]",
		"[Quality]", "[Speed]", "[Double Height]", "[Proportional]",
	}
	if len(sends) != len(wantTags) {
		t.Fatalf("sends = %d, want %d despite failures", len(sends), len(wantTags))
	}
	for i, tag := range wantTags {
		if sends[i].tag != tag {
			t.Errorf("send %d tag = %q, want %q", i, sends[i].tag, tag)
		}
	}

	// Reset, 10 cpi, skip disabled as one concatenated buffer.
	want := []byte{0x18, 0x1E, 0x1B, 0x25, 0x53, 0x30}
	if string(sends[0].payload) != string(want) {
		t.Errorf("restore buffer = % X, want % X", sends[0].payload, want)
	}
}

func TestSetAddress(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLineByLine, sink)

	svc.SetAddress("10.0.0.7", "9101")
	host, port := svc.Address()
	if host != "10.0.0.7" || port != "9101" {
		t.Errorf("Address() = %s:%s", host, port)
	}
}

func TestLineLengthProjection(t *testing.T) {
	sink := &captureSink{}
	svc := newTestService(t, model.ModeLineByLine, sink)

	ll := svc.LineLength(75)
	if ll.Display != "7.50" {
		t.Errorf("display = %q, want 7.50", ll.Display)
	}
	if ll.Feasibility != model.FeasibilityWarn {
		t.Errorf("feasibility = %q, want WARN", ll.Feasibility)
	}
}
