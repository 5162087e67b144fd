// internal/transport/tcp.go
package transport

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/utils"
)

// TCPSink sends buffers to a raw TCP printer port (usually 9100). Each
// Send dials a fresh connection and closes it after the write; the
// connection churn is deliberate, matching how the printer is driven in
// the field. The address is read from the provider at send time so the
// user can repoint the device between transmissions.
type TCPSink struct {
	addr     AddressProvider
	timeout  time.Duration
	observer Observer
	logger   *utils.PrinterLogger
}

// NewTCPSink creates a TCP sink. A zero timeout defaults to 5 seconds.
func NewTCPSink(addr AddressProvider, timeout time.Duration, observer Observer, logger *zap.Logger) *TCPSink {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TCPSink{
		addr:     addr,
		timeout:  timeout,
		observer: observer,
		logger:   utils.NewPrinterLogger(logger, "tcp"),
	}
}

// Send opens a connection, writes the full buffer and closes. A
// non-numeric port aborts before any connection attempt.
func (s *TCPSink) Send(ctx context.Context, payload []byte, tag string) error {
	start := time.Now()

	host, portStr := s.addr()
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		portErr := &InvalidPortError{Port: portStr}
		notify(s.observer, s.logger, tag, payload, start, portErr)
		return portErr
	}

	err = s.write(ctx, net.JoinHostPort(host, strconv.Itoa(port)), payload)
	notify(s.observer, s.logger, tag, payload, start, err)
	return err
}

func (s *TCPSink) write(ctx context.Context, address string, payload []byte) error {
	dialer := &net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(s.timeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	n, err := conn.Write(payload)
	if err != nil {
		return fmt.Errorf("failed to write to %s: %w", address, err)
	}
	if n != len(payload) {
		return fmt.Errorf("incomplete write: wrote %d of %d bytes", n, len(payload))
	}

	return nil
}
