// internal/discovery/serial_scanner.go
package discovery

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"go.bug.st/serial"
	"go.uber.org/zap"
)

// SerialScanner enumerates serial ports that could carry a printer.
type SerialScanner struct {
	logger *zap.Logger
	config *SerialScannerConfig
}

// SerialScannerConfig for serial scanner
type SerialScannerConfig struct {
	PortPatterns []string `json:"port_patterns"`
}

// NewSerialScanner creates a new serial scanner
func NewSerialScanner(logger *zap.Logger, config *SerialScannerConfig) *SerialScanner {
	if config == nil {
		config = &SerialScannerConfig{
			PortPatterns: defaultPortPatterns(),
		}
	}

	return &SerialScanner{
		logger: logger.With(zap.String("scanner", "serial")),
		config: config,
	}
}

// GetScannerType returns scanner type
func (s *SerialScanner) GetScannerType() string {
	return "serial"
}

// IsAvailable checks if serial scanning is available
func (s *SerialScanner) IsAvailable() bool {
	return true
}

// Scan lists serial ports matching the configured patterns. The device
// is write-only, so a matching port cannot be probed further without
// printing; enumeration is as far as discovery goes.
func (s *SerialScanner) Scan(ctx context.Context) ([]*DiscoveredPrinter, error) {
	s.logger.Info("Starting serial port scan")

	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial ports: %w", err)
	}

	var discovered []*DiscoveredPrinter
	for _, port := range ports {
		select {
		case <-ctx.Done():
			return discovered, ctx.Err()
		default:
		}

		if !s.matchesPatterns(port) {
			continue
		}

		discovered = append(discovered, &DiscoveredPrinter{
			Transport: "serial",
			Address:   port,
			Info: map[string]string{
				"platform": runtime.GOOS,
			},
			Confidence: 0.3,
		})
	}

	s.logger.Info("Serial scan completed", zap.Int("printers_found", len(discovered)))
	return discovered, nil
}

// matchesPatterns reports whether a port name fits any pattern.
func (s *SerialScanner) matchesPatterns(port string) bool {
	if len(s.config.PortPatterns) == 0 {
		return true
	}
	for _, pattern := range s.config.PortPatterns {
		if ok, err := filepath.Match(pattern, port); err == nil && ok {
			return true
		}
	}
	return false
}

// defaultPortPatterns returns the likely printer port names per platform.
func defaultPortPatterns() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"COM*"}
	case "darwin":
		return []string{"/dev/tty.usbserial*", "/dev/cu.usbserial*"}
	default:
		return []string{"/dev/ttyUSB*", "/dev/ttyS*", "/dev/ttyACM*"}
	}
}
