// internal/discovery/scanner_test.go
package discovery

import (
	"context"
	"net"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestExpandCIDR(t *testing.T) {
	hosts, err := expandCIDR("192.168.1.0/30")
	if err != nil {
		t.Fatalf("expandCIDR() error = %v", err)
	}

	want := []string{"192.168.1.1", "192.168.1.2"}
	if len(hosts) != len(want) {
		t.Fatalf("hosts = %v, want %v", hosts, want)
	}
	for i := range want {
		if hosts[i] != want[i] {
			t.Errorf("hosts[%d] = %s, want %s", i, hosts[i], want[i])
		}
	}
}

func TestExpandCIDRRejectsInvalid(t *testing.T) {
	if _, err := expandCIDR("not-a-range"); err == nil {
		t.Errorf("expandCIDR() accepted invalid range")
	}
	if _, err := expandCIDR("fe80::/120"); err == nil {
		t.Errorf("expandCIDR() accepted IPv6 range")
	}
}

func TestTCPScannerFindsListener(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
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

	port := listener.Addr().(*net.TCPAddr).Port
	scanner := NewTCPScanner(zap.NewNop(), &TCPScannerConfig{
		NetworkRanges: []string{"127.0.0.1/32"},
		Ports:         []int{port},
		ConnTimeout:   time.Second,
		Concurrency:   4,
	})

	printers, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(printers) != 1 {
		t.Fatalf("printers = %d, want 1", len(printers))
	}
	if printers[0].Transport != "tcp" {
		t.Errorf("transport = %q, want tcp", printers[0].Transport)
	}
}

func TestSerialScannerPatternMatch(t *testing.T) {
	scanner := NewSerialScanner(zap.NewNop(), &SerialScannerConfig{
		PortPatterns: []string{"/dev/ttyUSB*"},
	})

	if !scanner.matchesPatterns("/dev/ttyUSB0") {
		t.Errorf("expected /dev/ttyUSB0 to match")
	}
	if scanner.matchesPatterns("/dev/ttyS0") {
		t.Errorf("expected /dev/ttyS0 not to match")
	}
}

func TestScannerManagerScanByType(t *testing.T) {
	manager := NewScannerManager(zap.NewNop())
	manager.RegisterScanner(NewSerialScanner(zap.NewNop(), nil))

	if _, err := manager.ScanByType(context.Background(), "bluetooth"); err == nil {
		t.Errorf("ScanByType() accepted unregistered scanner type")
	}

	available := manager.GetAvailableScanners()
	if len(available) != 1 || available[0] != "serial" {
		t.Errorf("available scanners = %v, want [serial]", available)
	}
}
