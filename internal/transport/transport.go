// internal/transport/transport.go
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dairyking98/network-okidata/internal/model"
	"github.com/dairyking98/network-okidata/internal/utils"
	"github.com/dairyking98/network-okidata/pkg/okidata"
)

// Sink delivers a single tagged byte buffer to the printer. Every call
// is an independent delivery: the sink opens a fresh connection, writes
// the full buffer and closes again. No session state is kept between
// calls and no retry is attempted on failure.
type Sink interface {
	Send(ctx context.Context, payload []byte, tag string) error
}

// Observer receives a record for every transmission attempt, successful
// or not. It is purely additive; sinks never consult it.
type Observer func(tx *model.Transmission)

// AddressProvider returns the device host and port at send time. The
// port is a raw string so that a non-numeric value surfaces as an
// InvalidPortError before any bytes are written.
type AddressProvider func() (host, port string)

// InvalidPortError reports a non-numeric port configuration. The
// transmission is aborted before any connection attempt.
type InvalidPortError struct {
	Port string
}

func (e *InvalidPortError) Error() string {
	return fmt.Sprintf("invalid printer port: %q", e.Port)
}

// IsInvalidPort reports whether err is an InvalidPortError.
func IsInvalidPort(err error) bool {
	var ipe *InvalidPortError
	return errors.As(err, &ipe)
}

// notify logs the attempt and hands a transmission record to the
// observer. The byte values are rendered in decimal to match the
// debug panel format.
func notify(observer Observer, plog *utils.PrinterLogger, tag string, payload []byte, start time.Time, sendErr error) {
	tx := &model.Transmission{
		ID:         uuid.New(),
		Tag:        tag,
		Bytes:      okidata.DecimalString(payload),
		ByteCount:  len(payload),
		Status:     model.TransmissionStatusSuccess,
		DurationMs: int(time.Since(start).Milliseconds()),
		SentAt:     start,
	}

	if sendErr != nil {
		tx.Status = model.TransmissionStatusFailed
		msg := sendErr.Error()
		tx.ErrorMessage = &msg
	}

	plog.LogTransmission(tag, tx.Bytes, time.Since(start), sendErr)

	if observer != nil {
		observer(tx)
	}
}
