// internal/transport/usb.go
package transport

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/gousb"
	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/utils"
)

// USBConfig describes a USB printer attachment.
type USBConfig struct {
	VendorID  string `json:"vendor_id"`
	ProductID string `json:"product_id"`
	Endpoint  int    `json:"endpoint"`
}

// USBSink sends buffers to a USB attached printer, claiming the device
// per transmission and releasing it afterwards.
type USBSink struct {
	config   *USBConfig
	observer Observer
	logger   *utils.PrinterLogger
}

// NewUSBSink creates a USB sink.
func NewUSBSink(config *USBConfig, observer Observer, logger *zap.Logger) *USBSink {
	return &USBSink{
		config:   config,
		observer: observer,
		logger: utils.NewPrinterLogger(logger.With(
			zap.String("vendor_id", config.VendorID),
			zap.String("product_id", config.ProductID),
		), "usb"),
	}
}

// Send claims the device, writes the full buffer and releases it.
func (s *USBSink) Send(ctx context.Context, payload []byte, tag string) error {
	start := time.Now()
	err := s.write(ctx, payload)
	notify(s.observer, s.logger, tag, payload, start, err)
	return err
}

func (s *USBSink) write(ctx context.Context, payload []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	vendorID, err := parseHexID(s.config.VendorID)
	if err != nil {
		return fmt.Errorf("invalid USB vendor id %q: %w", s.config.VendorID, err)
	}
	productID, err := parseHexID(s.config.ProductID)
	if err != nil {
		return fmt.Errorf("invalid USB product id %q: %w", s.config.ProductID, err)
	}

	usbCtx := gousb.NewContext()
	defer usbCtx.Close()

	device, err := usbCtx.OpenDeviceWithVIDPID(vendorID, productID)
	if err != nil {
		return fmt.Errorf("failed to open USB device: %w", err)
	}
	if device == nil {
		return fmt.Errorf("USB device %s:%s not found", s.config.VendorID, s.config.ProductID)
	}
	defer device.Close()

	if err := device.SetAutoDetach(true); err != nil {
		return fmt.Errorf("failed to set auto detach: %w", err)
	}

	intf, done, err := device.DefaultInterface()
	if err != nil {
		return fmt.Errorf("failed to claim USB interface: %w", err)
	}
	defer done()

	endpoint, err := intf.OutEndpoint(s.config.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to open out endpoint %d: %w", s.config.Endpoint, err)
	}

	n, err := endpoint.Write(payload)
	if err != nil {
		return fmt.Errorf("failed to write to USB endpoint: %w", err)
	}
	if n != len(payload) {
		return fmt.Errorf("incomplete write: wrote %d of %d bytes", n, len(payload))
	}

	return nil
}

// parseHexID parses a hex device ID string (0x1234 or 1234).
func parseHexID(hexStr string) (gousb.ID, error) {
	if len(hexStr) > 2 && (hexStr[:2] == "0x" || hexStr[:2] == "0X") {
		hexStr = hexStr[2:]
	}

	id, err := strconv.ParseUint(hexStr, 16, 16)
	if err != nil {
		return 0, err
	}

	return gousb.ID(id), nil
}
