package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

// LogstashWriter mirrors log output to a Logstash TCP input while keeping
// the standard log package non-blocking. A single connection is kept open;
// writes are dropped silently while Logstash is unreachable, with a
// cool-down before the next connect attempt.
type LogstashWriter struct {
	addr          string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryInterval time.Duration

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool
}

func NewLogstashWriter(addr string) (*LogstashWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logstash: empty address")
	}
	return &LogstashWriter{
		addr:          addr,
		dialTimeout:   2 * time.Second,
		writeTimeout:  time.Second,
		retryInterval: 5 * time.Second,
	}, nil
}

// Write always reports success to keep the logger itself from failing; a
// broken pipe only schedules a reconnect.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return len(p), nil
	}
	if w.conn == nil {
		if time.Now().Before(w.nextRetry) {
			return len(p), nil
		}
		conn, err := net.DialTimeout("tcp", w.addr, w.dialTimeout)
		if err != nil {
			w.nextRetry = time.Now().Add(w.retryInterval)
			return len(p), nil
		}
		w.conn = conn
	}

	_ = w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	if _, err := w.conn.Write(p); err != nil {
		_ = w.conn.Close()
		w.conn = nil
		w.nextRetry = time.Now().Add(w.retryInterval)
	}
	return len(p), nil
}

func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

var _ io.WriteCloser = (*LogstashWriter)(nil)
