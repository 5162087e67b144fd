// internal/discovery/tcp_scanner.go
package discovery

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TCPScanner probes local network ranges for open raw-print ports.
type TCPScanner struct {
	logger *zap.Logger
	config *TCPScannerConfig
}

// TCPScannerConfig for TCP scanner
type TCPScannerConfig struct {
	NetworkRanges []string      `json:"network_ranges"`
	Ports         []int         `json:"ports"`
	ConnTimeout   time.Duration `json:"connection_timeout"`
	Concurrency   int           `json:"concurrency"`
}

// NewTCPScanner creates a new TCP scanner
func NewTCPScanner(logger *zap.Logger, config *TCPScannerConfig) *TCPScanner {
	if config == nil {
		config = &TCPScannerConfig{
			NetworkRanges: []string{"192.168.1.0/24"},
			Ports:         []int{9100},
			ConnTimeout:   500 * time.Millisecond,
			Concurrency:   64,
		}
	}
	if config.ConnTimeout <= 0 {
		config.ConnTimeout = 500 * time.Millisecond
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 64
	}

	return &TCPScanner{
		logger: logger.With(zap.String("scanner", "tcp")),
		config: config,
	}
}

// GetScannerType returns scanner type
func (s *TCPScanner) GetScannerType() string {
	return "tcp"
}

// IsAvailable checks if TCP scanning is available
func (s *TCPScanner) IsAvailable() bool {
	return true
}

// Scan probes every host in the configured ranges on the configured
// ports. A completed TCP handshake counts as a candidate; raw print
// ports accept silently, so there is nothing further to read.
func (s *TCPScanner) Scan(ctx context.Context) ([]*DiscoveredPrinter, error) {
	s.logger.Info("Starting TCP network scan",
		zap.Strings("ranges", s.config.NetworkRanges),
		zap.Ints("ports", s.config.Ports),
	)

	var (
		mu         sync.Mutex
		discovered []*DiscoveredPrinter
		wg         sync.WaitGroup
	)
	sem := make(chan struct{}, s.config.Concurrency)

	for _, cidr := range s.config.NetworkRanges {
		hosts, err := expandCIDR(cidr)
		if err != nil {
			s.logger.Warn("Skipping invalid network range",
				zap.String("range", cidr),
				zap.Error(err),
			)
			continue
		}

		for _, host := range hosts {
			for _, port := range s.config.Ports {
				select {
				case <-ctx.Done():
					wg.Wait()
					return discovered, ctx.Err()
				case sem <- struct{}{}:
				}

				wg.Add(1)
				go func(host string, port int) {
					defer wg.Done()
					defer func() { <-sem }()

					if printer := s.probe(ctx, host, port); printer != nil {
						mu.Lock()
						discovered = append(discovered, printer)
						mu.Unlock()
					}
				}(host, port)
			}
		}
	}

	wg.Wait()

	s.logger.Info("TCP scan completed", zap.Int("printers_found", len(discovered)))
	return discovered, nil
}

// probe attempts a TCP handshake with one host and port.
func (s *TCPScanner) probe(ctx context.Context, host string, port int) *DiscoveredPrinter {
	address := net.JoinHostPort(host, strconv.Itoa(port))

	dialer := &net.Dialer{Timeout: s.config.ConnTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil
	}
	conn.Close()

	confidence := 0.5
	if port == 9100 {
		confidence = 0.9
	}

	return &DiscoveredPrinter{
		Transport: "tcp",
		Address:   address,
		Info: map[string]string{
			"host": host,
			"port": strconv.Itoa(port),
		},
		Confidence: confidence,
	}
}

// expandCIDR lists the usable host addresses of an IPv4 network. The
// network and broadcast addresses are skipped.
func expandCIDR(cidr string) ([]string, error) {
	ip, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("invalid CIDR %q: %w", cidr, err)
	}
	if ip.To4() == nil {
		return nil, fmt.Errorf("only IPv4 ranges are supported: %q", cidr)
	}

	var hosts []string
	for addr := ip.Mask(network.Mask); network.Contains(addr); incrementIP(addr) {
		hosts = append(hosts, addr.String())
	}

	if len(hosts) > 2 {
		hosts = hosts[1 : len(hosts)-1]
	}
	return hosts, nil
}

// incrementIP advances an IP address by one.
func incrementIP(ip net.IP) {
	for i := len(ip) - 1; i >= 0; i-- {
		ip[i]++
		if ip[i] != 0 {
			break
		}
	}
}
