// internal/transport/factory.go
package transport

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Options carries everything the factory needs to build a sink.
type Options struct {
	Kind     string // tcp, serial or usb
	Address  AddressProvider
	Timeout  time.Duration
	Serial   *SerialConfig
	USB      *USBConfig
	Observer Observer
}

// NewSink creates a sink for the configured transport kind.
func NewSink(opts Options, logger *zap.Logger) (Sink, error) {
	switch opts.Kind {
	case "tcp":
		if opts.Address == nil {
			return nil, fmt.Errorf("tcp transport requires an address provider")
		}
		return NewTCPSink(opts.Address, opts.Timeout, opts.Observer, logger), nil

	case "serial":
		if opts.Serial == nil || opts.Serial.Port == "" {
			return nil, fmt.Errorf("serial transport requires a port")
		}
		return NewSerialSink(opts.Serial, opts.Observer, logger), nil

	case "usb":
		if opts.USB == nil || opts.USB.VendorID == "" || opts.USB.ProductID == "" {
			return nil, fmt.Errorf("usb transport requires vendor and product ids")
		}
		return NewUSBSink(opts.USB, opts.Observer, logger), nil

	default:
		return nil, fmt.Errorf("unsupported transport kind: %s", opts.Kind)
	}
}
