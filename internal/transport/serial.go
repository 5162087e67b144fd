// internal/transport/serial.go
package transport

import (
	"context"
	"fmt"
	"time"

	"go.bug.st/serial"
	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/utils"
)

// SerialConfig describes a serial printer attachment.
type SerialConfig struct {
	Port     string        `json:"port"`
	BaudRate int           `json:"baud_rate"`
	DataBits int           `json:"data_bits"`
	StopBits int           `json:"stop_bits"`
	Parity   string        `json:"parity"`
	Timeout  time.Duration `json:"timeout"`
}

// SerialSink sends buffers to a serially attached printer. Like the TCP
// sink it opens the port fresh for every transmission and closes it
// after the write, so the port is free between sends.
type SerialSink struct {
	config   *SerialConfig
	observer Observer
	logger   *utils.PrinterLogger
}

// NewSerialSink creates a serial sink.
func NewSerialSink(config *SerialConfig, observer Observer, logger *zap.Logger) *SerialSink {
	return &SerialSink{
		config:   config,
		observer: observer,
		logger:   utils.NewPrinterLogger(logger.With(zap.String("port", config.Port)), "serial"),
	}
}

// Send opens the port, writes the full buffer and closes.
func (s *SerialSink) Send(ctx context.Context, payload []byte, tag string) error {
	start := time.Now()
	err := s.write(ctx, payload)
	notify(s.observer, s.logger, tag, payload, start, err)
	return err
}

func (s *SerialSink) write(ctx context.Context, payload []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	mode := &serial.Mode{
		BaudRate: s.config.BaudRate,
		DataBits: s.config.DataBits,
		StopBits: serial.StopBits(s.config.StopBits),
	}

	switch s.config.Parity {
	case "odd":
		mode.Parity = serial.OddParity
	case "even":
		mode.Parity = serial.EvenParity
	default:
		mode.Parity = serial.NoParity
	}

	port, err := serial.Open(s.config.Port, mode)
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", s.config.Port, err)
	}
	defer port.Close()

	n, err := port.Write(payload)
	if err != nil {
		return fmt.Errorf("failed to write to serial port: %w", err)
	}
	if n != len(payload) {
		return fmt.Errorf("incomplete write: wrote %d of %d bytes", n, len(payload))
	}

	return nil
}
