// internal/handler/printer_handler_test.go
package handler

import (
	"bytes"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dairyking98/network-okidata/internal/config"
	"github.com/dairyking98/network-okidata/internal/service"
)

// newLivePrinterRouter wires a printer handler over a live-mode service
// whose TCP sink targets a local listener. Received payloads arrive on
// the returned channel, one per connection.
func newLivePrinterRouter(t *testing.T) (*gin.Engine, chan []byte) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { listener.Close() })

	received := make(chan []byte, 8)
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				data, _ := io.ReadAll(c)
				received <- data
			}(conn)
		}
	}()

	_, port, err := net.SplitHostPort(listener.Addr().String())
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.PrinterConfig{
		Transport: "tcp",
		Host:      "127.0.0.1",
		Port:      port,
		Timeout:   time.Second,
		StepDelay: time.Millisecond,
		Defaults: config.DefaultsConfig{
			CPI:         "10 cpi",
			Font:        "Block Graphic Set",
			Spacing:     "1/6",
			SpacingN:    9,
			Quality:     "HSD/SSD",
			Speed:       "Full",
			Zero:        "Slashed Zero",
			RightMargin: 7.5,
			Mode:        "LIVE",
		},
	}

	svc, err := service.NewPrinterService(cfg, nil, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	router := gin.New()
	printerHandler := NewPrinterHandler(svc, nil, zap.NewNop())
	printerHandler.RegisterRoutes(router.Group("/api/v1"))
	return router, received
}

func postKeystroke(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/printer/keystrokes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSendKeystrokeMultiByteRune(t *testing.T) {
	router, received := newLivePrinterRouter(t)

	w := postKeystroke(router, `{"char": "é"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	select {
	case got := <-received:
		if !bytes.Equal(got, []byte("é")) {
			t.Errorf("payload: got % X, want % X", got, []byte("é"))
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for keystroke payload")
	}
}

func TestSendKeystrokeRejectsMultipleCharacters(t *testing.T) {
	router, _ := newLivePrinterRouter(t)

	for _, body := range []string{`{"char": "ab"}`, `{"char": ""}`} {
		if w := postKeystroke(router, body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: got %d, want 400", body, w.Code)
		}
	}
}
