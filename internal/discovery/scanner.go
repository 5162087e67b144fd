// internal/discovery/scanner.go
package discovery

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// PrinterScanner probes one transport for reachable printers.
type PrinterScanner interface {
	Scan(ctx context.Context) ([]*DiscoveredPrinter, error)
	GetScannerType() string
	IsAvailable() bool
}

// DiscoveredPrinter represents a candidate printer endpoint
type DiscoveredPrinter struct {
	Transport  string            `json:"transport"`
	Address    string            `json:"address"`
	Info       map[string]string `json:"info,omitempty"`
	Confidence float64           `json:"confidence"` // 0.0-1.0
}

// ScannerManager manages all printer scanners
type ScannerManager struct {
	scanners map[string]PrinterScanner
	logger   *zap.Logger
}

// NewScannerManager creates a new scanner manager
func NewScannerManager(logger *zap.Logger) *ScannerManager {
	return &ScannerManager{
		scanners: make(map[string]PrinterScanner),
		logger:   logger,
	}
}

// RegisterScanner registers a printer scanner
func (sm *ScannerManager) RegisterScanner(scanner PrinterScanner) {
	scannerType := scanner.GetScannerType()
	sm.scanners[scannerType] = scanner
	sm.logger.Info("Scanner registered", zap.String("type", scannerType))
}

// ScanAll scans all registered scanner types
func (sm *ScannerManager) ScanAll(ctx context.Context) ([]*DiscoveredPrinter, error) {
	var allPrinters []*DiscoveredPrinter

	for scannerType, scanner := range sm.scanners {
		if !scanner.IsAvailable() {
			sm.logger.Debug("Scanner not available, skipping", zap.String("type", scannerType))
			continue
		}

		printers, err := scanner.Scan(ctx)
		if err != nil {
			sm.logger.Error("Scanner failed", zap.String("type", scannerType), zap.Error(err))
			continue
		}

		allPrinters = append(allPrinters, printers...)
		sm.logger.Info("Scanner completed",
			zap.String("type", scannerType),
			zap.Int("printers_found", len(printers)),
		)
	}

	return allPrinters, nil
}

// ScanByType scans specific scanner type
func (sm *ScannerManager) ScanByType(ctx context.Context, scannerType string) ([]*DiscoveredPrinter, error) {
	scanner, exists := sm.scanners[scannerType]
	if !exists {
		return nil, fmt.Errorf("scanner type not found: %s", scannerType)
	}

	if !scanner.IsAvailable() {
		return nil, fmt.Errorf("scanner not available: %s", scannerType)
	}

	return scanner.Scan(ctx)
}

// GetAvailableScanners returns list of available scanner types
func (sm *ScannerManager) GetAvailableScanners() []string {
	var available []string
	for scannerType, scanner := range sm.scanners {
		if scanner.IsAvailable() {
			available = append(available, scannerType)
		}
	}
	return available
}
