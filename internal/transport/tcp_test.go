// internal/transport/tcp_test.go
package transport

import (
	"bytes"
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/model"
)

// recordingObserver collects transmission records for assertions.
type recordingObserver struct {
	mu      sync.Mutex
	records []*model.Transmission
}

func (r *recordingObserver) observe(tx *model.Transmission) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, tx)
}

func (r *recordingObserver) last(t *testing.T) *model.Transmission {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) == 0 {
		t.Fatal("no transmission recorded")
	}
	return r.records[len(r.records)-1]
}

func staticAddr(host, port string) AddressProvider {
	return func() (string, string) { return host, port }
}

func TestTCPSinkSendsPayload(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 64)
		n, _ := conn.Read(buf)
		received <- buf[:n]
	}()

	_, port, err := net.SplitHostPort(listener.Addr().String())
	if err != nil {
		t.Fatal(err)
	}

	observer := &recordingObserver{}
	sink := NewTCPSink(staticAddr("127.0.0.1", port), time.Second, observer.observe, zap.NewNop())

	payload := []byte{0x0D, 0x0A}
	if err := sink.Send(context.Background(), payload, "[Test]"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case got := <-received:
		if !bytes.Equal(got, payload) {
			t.Errorf("received % X, want % X", got, payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for payload")
	}

	tx := observer.last(t)
	if tx.Status != model.TransmissionStatusSuccess {
		t.Errorf("status: got %s, want SUCCESS", tx.Status)
	}
	if tx.Bytes != "13 10" {
		t.Errorf("decimal bytes: got %q, want %q", tx.Bytes, "13 10")
	}
	if tx.Tag != "[Test]" {
		t.Errorf("tag: got %q", tx.Tag)
	}
}

func TestTCPSinkInvalidPort(t *testing.T) {
	observer := &recordingObserver{}
	sink := NewTCPSink(staticAddr("127.0.0.1", "ninety-one"), time.Second, observer.observe, zap.NewNop())

	err := sink.Send(context.Background(), []byte{0x0D}, "[Test]")
	if err == nil {
		t.Fatal("expected error for non-numeric port")
	}
	if !IsInvalidPort(err) {
		t.Errorf("expected InvalidPortError, got %T: %v", err, err)
	}

	tx := observer.last(t)
	if tx.Status != model.TransmissionStatusFailed {
		t.Errorf("status: got %s, want FAILED", tx.Status)
	}
}

func TestTCPSinkConnectionRefused(t *testing.T) {
	// Grab a free port and close it so the dial is refused.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	_, port, _ := net.SplitHostPort(listener.Addr().String())
	listener.Close()

	observer := &recordingObserver{}
	sink := NewTCPSink(staticAddr("127.0.0.1", port), 200*time.Millisecond, observer.observe, zap.NewNop())

	err = sink.Send(context.Background(), []byte{0x0D}, "[Test]")
	if err == nil {
		t.Fatal("expected connection error")
	}
	if IsInvalidPort(err) {
		t.Error("connection failure misreported as invalid port")
	}

	tx := observer.last(t)
	if tx.Status != model.TransmissionStatusFailed {
		t.Errorf("status: got %s, want FAILED", tx.Status)
	}
	if tx.ErrorMessage == nil {
		t.Error("expected error message on failed transmission")
	}
}

func TestTCPSinkReadsAddressPerSend(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	_, goodPort, _ := net.SplitHostPort(listener.Addr().String())

	var mu sync.Mutex
	port := "not-a-port"
	provider := func() (string, string) {
		mu.Lock()
		defer mu.Unlock()
		return "127.0.0.1", port
	}

	sink := NewTCPSink(provider, time.Second, nil, zap.NewNop())

	if err := sink.Send(context.Background(), []byte{0x0D}, "[Test]"); !IsInvalidPort(err) {
		t.Fatalf("expected invalid port error, got %v", err)
	}

	// Fixing the configured port fixes the next send without restart.
	mu.Lock()
	port = goodPort
	mu.Unlock()

	if err := sink.Send(context.Background(), []byte{0x0D}, "[Test]"); err != nil {
		t.Fatalf("send after address fix: %v", err)
	}
}

func TestNewSinkFactory(t *testing.T) {
	logger := zap.NewNop()

	if _, err := NewSink(Options{Kind: "tcp", Address: staticAddr("h", "1")}, logger); err != nil {
		t.Errorf("tcp: %v", err)
	}
	if _, err := NewSink(Options{Kind: "tcp"}, logger); err == nil {
		t.Error("tcp without address provider should fail")
	}
	if _, err := NewSink(Options{Kind: "serial", Serial: &SerialConfig{Port: "/dev/ttyUSB0"}}, logger); err != nil {
		t.Errorf("serial: %v", err)
	}
	if _, err := NewSink(Options{Kind: "serial", Serial: &SerialConfig{}}, logger); err == nil {
		t.Error("serial without port should fail")
	}
	if _, err := NewSink(Options{Kind: "usb", USB: &USBConfig{VendorID: "04b8", ProductID: "0202"}}, logger); err != nil {
		t.Errorf("usb: %v", err)
	}
	if _, err := NewSink(Options{Kind: "parallel"}, logger); err == nil {
		t.Error("unsupported kind should fail")
	}
}
