// internal/service/printer_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/config"
	"github.com/dairyking98/network-okidata/internal/model"
	"github.com/dairyking98/network-okidata/internal/sequencer"
	"github.com/dairyking98/network-okidata/internal/session"
	"github.com/dairyking98/network-okidata/internal/transport"
	"github.com/dairyking98/network-okidata/internal/utils"
	"github.com/dairyking98/network-okidata/pkg/okidata"
)

// ErrNotLiveMode is returned when a keystroke arrives while the session
// is buffering whole lines.
var ErrNotLiveMode = fmt.Errorf("session is not in live mode")

// ErrUnknownCommand is returned for manual sends of names missing from
// the command table. Toggle and setting paths treat the same condition
// as a silent no-op; the manual path reports it because the name came
// straight from the caller.
var ErrUnknownCommand = fmt.Errorf("unknown command name")

// TransmissionError wraps a wire delivery failure, distinguishing it
// from request validation errors. Validation always runs before the
// first byte goes out.
type TransmissionError struct {
	Err error
}

func (e *TransmissionError) Error() string { return "transmission failed: " + e.Err.Error() }

func (e *TransmissionError) Unwrap() error { return e.Err }

// IsTransmissionError reports whether err wraps a wire failure.
func IsTransmissionError(err error) bool {
	var te *TransmissionError
	return errors.As(err, &te)
}

// PrinterService owns the printer session: it holds the toggle and
// setting state, the device address, the transport sink and the line
// commit sequencer. All transmissions originate here.
type PrinterService struct {
	state     *session.State
	sink      transport.Sink
	sequencer *sequencer.Sequencer
	logger    *zap.Logger
	plog      *utils.PrinterLogger

	mu   sync.RWMutex
	host string
	port string
}

// NewPrinterService wires the session state, transport sink and
// sequencer from configuration. The observer receives a record for
// every transmission attempt.
func NewPrinterService(cfg *config.PrinterConfig, observer transport.Observer, logger *zap.Logger) (*PrinterService, error) {
	defaults := model.SessionSettings{
		CPI:             cfg.Defaults.CPI,
		Font:            cfg.Defaults.Font,
		Spacing:         cfg.Defaults.Spacing,
		SpacingN:        cfg.Defaults.SpacingN,
		Quality:         cfg.Defaults.Quality,
		Speed:           cfg.Defaults.Speed,
		Zero:            cfg.Defaults.Zero,
		SkipPerforation: cfg.Defaults.Skip,
		LeftMarginTabs:  cfg.Defaults.LeftMargin,
		RightMarginIn:   cfg.Defaults.RightMargin,
		Mode:            model.Mode(cfg.Defaults.Mode),
	}

	svc := &PrinterService{
		state:  session.NewState(defaults),
		logger: logger.With(zap.String("component", "printer_service")),
		plog:   utils.NewPrinterLogger(logger, cfg.Transport),
		host:   cfg.Host,
		port:   cfg.Port,
	}

	sink, err := transport.NewSink(transport.Options{
		Kind:    cfg.Transport,
		Address: svc.Address,
		Timeout: cfg.Timeout,
		Serial: &transport.SerialConfig{
			Port:     cfg.Serial.Device,
			BaudRate: cfg.Serial.BaudRate,
			DataBits: cfg.Serial.DataBits,
			StopBits: cfg.Serial.StopBits,
			Parity:   cfg.Serial.Parity,
			Timeout:  cfg.Timeout,
		},
		USB: &transport.USBConfig{
			VendorID:  cfg.USB.VendorID,
			ProductID: cfg.USB.ProductID,
			Endpoint:  cfg.USB.Endpoint,
		},
		Observer: observer,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport sink: %w", err)
	}

	svc.sink = sink
	svc.sequencer = sequencer.New(sink, cfg.StepDelay, logger)

	return svc, nil
}

// Start launches the commit sequencer worker.
func (s *PrinterService) Start() {
	s.sequencer.Start()
}

// Stop halts the commit sequencer.
func (s *PrinterService) Stop() {
	s.sequencer.Stop()
}

// Address returns the current device host and port. The port stays a
// raw string so a bad value fails at transmission time, not here.
func (s *PrinterService) Address() (host, port string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.host, s.port
}

// SetAddress repoints the device. It takes effect on the next
// transmission; nothing in flight is touched.
func (s *PrinterService) SetAddress(host, port string) {
	s.mu.Lock()
	s.host = host
	s.port = port
	s.mu.Unlock()

	s.logger.Info("Printer address updated",
		zap.String("host", host),
		zap.String("port", port),
	)
}

// SendKeystroke transmits a single typed character immediately. Only
// valid in live mode; line-by-line sessions buffer client-side and
// deliver through CommitLine.
func (s *PrinterService) SendKeystroke(ctx context.Context, char string) error {
	if s.state.Mode() != model.ModeLive {
		return ErrNotLiveMode
	}
	if err := s.sink.Send(ctx, []byte(char), "[Live Keystroke]"); err != nil {
		return &TransmissionError{Err: err}
	}
	return nil
}

// CommitLine schedules the four-step end-of-line sequence. In live mode
// the text was already sent keystroke by keystroke, so only the
// carriage control steps go out.
func (s *PrinterService) CommitLine(text string) *sequencer.Commit {
	includeText := s.state.Mode() == model.ModeLineByLine
	marginTabs := s.state.LeftMargin()

	commit := s.sequencer.CommitLine(text, marginTabs, includeText)
	s.plog.LogCommit(commit.ID.String(), len(text), marginTabs, includeText)

	return commit
}

// SetToggle updates a formatting toggle and transmits its command. The
// same value may be set repeatedly; the device is told once per request.
func (s *PrinterService) SetToggle(ctx context.Context, feature model.Feature, enabled bool) error {
	outbound, err := s.state.SetToggle(feature, enabled)
	if err != nil {
		return err
	}
	return s.send(ctx, outbound)
}

// ApplySetting routes a named setting change to the session state and
// transmits the resulting command, if the setting produces one. The n
// parameter carries numeric settings, inches the right margin.
func (s *PrinterService) ApplySetting(ctx context.Context, name, value string, n int, inches float64) error {
	var (
		outbound session.Outbound
		err      error
	)

	switch name {
	case "cpi":
		outbound, err = s.state.SelectCPI(value)
	case "font":
		outbound, err = s.state.SelectFont(value)
	case "spacing":
		outbound, err = s.state.SelectSpacing(value, n)
	case "quality":
		outbound, err = s.state.SelectQuality(value)
	case "speed":
		outbound, err = s.state.SelectSpeed(value)
	case "zero":
		outbound, err = s.state.SelectZero(value)
	case "skip_perforation":
		outbound, err = s.state.SetSkipPerforation(n)
	case "left_margin":
		// Margin changes are local; the tab burst goes out on commit.
		return s.state.SetLeftMargin(n)
	case "right_margin":
		return s.state.SetRightMargin(inches)
	case "mode":
		return s.state.SetMode(model.Mode(value))
	default:
		return fmt.Errorf("unknown setting: %q", name)
	}

	if err != nil {
		return err
	}
	return s.send(ctx, outbound)
}

// SendCommand transmits a named command from the static table. Fixed
// commands ignore the parameter; parametric ones require it in 0-9.
func (s *PrinterService) SendCommand(ctx context.Context, name string, param *int) error {
	cmd := okidata.Lookup(name)

	var payload []byte
	switch cmd.Kind {
	case okidata.KindFixed:
		payload = cmd.Encode()
	case okidata.KindParametric:
		if param == nil {
			return fmt.Errorf("command %q requires a parameter", name)
		}
		if *param < 0 || *param > 9 {
			return fmt.Errorf("command parameter out of range: %d", *param)
		}
		payload = cmd.EncodeParam(*param)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	if err := s.sink.Send(ctx, payload, "["+name+"]"); err != nil {
		return &TransmissionError{Err: err}
	}
	return nil
}

// PushDefaults re-sends the stored defaults to the device: the combined
// reset buffer first, then font, spacing, quality, speed, double height
// and proportional as individual transmissions. Stored toggles are not
// modified; a failed step does not stop the rest.
func (s *PrinterService) PushDefaults(ctx context.Context) error {
	var firstErr error
	for _, outbound := range s.state.DefaultsPlan() {
		if err := s.send(ctx, outbound); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// LineLength projects the printed length of a line under the current
// pitch, double-wide state and margins.
func (s *PrinterService) LineLength(charCount int) model.LineLength {
	return s.state.LineLength(charCount)
}

// Session returns a snapshot of the full session state.
func (s *PrinterService) Session() model.SessionSnapshot {
	return s.state.Snapshot()
}

// Commands lists every name in the static command table.
func (s *PrinterService) Commands() []string {
	return okidata.Names()
}

func (s *PrinterService) send(ctx context.Context, outbound session.Outbound) error {
	if err := s.sink.Send(ctx, outbound.Payload, outbound.Tag); err != nil {
		return &TransmissionError{Err: err}
	}
	return nil
}
