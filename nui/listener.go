package nui

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/linesmerrill/report-nui/models"
)

const (
	defaultPingInterval = 30 * time.Second
	writeWait           = 5 * time.Second
)

// Listener receives host push notifications over a websocket connection
type Listener struct {
	URL          string
	Dialer       *websocket.Dialer
	PingInterval time.Duration
}

// NewListener creates a listener for the given ws:// or wss:// URL
func NewListener(url string) *Listener {
	return &Listener{
		URL:          url,
		Dialer:       websocket.DefaultDialer,
		PingInterval: defaultPingInterval,
	}
}

// Listen dials the host and delivers decoded notifications on out until
// ctx is cancelled or the connection drops. Undecodable messages are logged
// and skipped. A clean close from the host returns nil.
func (l *Listener) Listen(ctx context.Context, out chan<- models.Notification) error {
	dialer := l.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	conn, _, err := dialer.DialContext(ctx, l.URL, nil)
	if err != nil {
		return &TransportError{Name: "listen", Err: err}
	}
	zap.S().Infow("connected to host notifications", "url", l.URL)

	done := make(chan struct{})
	defer close(done)
	go l.keepAlive(ctx, conn, done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			conn.Close()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return &TransportError{Name: "listen", Err: err}
		}

		n, err := DecodeNotification(data)
		if err != nil {
			zap.S().Warnw("dropping host notification",
				"error", err,
				"size", len(data))
			continue
		}

		select {
		case out <- n:
		case <-ctx.Done():
			conn.Close()
			return ctx.Err()
		}
	}
}

func (l *Listener) keepAlive(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	interval := l.PingInterval
	if interval <= 0 {
		interval = defaultPingInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			conn.Close()
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				conn.Close()
				return
			}
		}
	}
}
