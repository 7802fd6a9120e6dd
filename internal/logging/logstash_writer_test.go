package logging

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogstashWriterRejectsEmptyAddr(t *testing.T) {
	_, err := NewLogstashWriter("  ")
	require.Error(t, err)
}

func TestLogstashWriterDeliversLines(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 256)
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		received <- buf[:n]
	}()

	writer, err := NewLogstashWriter(listener.Addr().String())
	require.NoError(t, err)
	defer writer.Close()

	line := []byte(`{"msg":"hello"}` + "\n")
	n, err := writer.Write(line)
	require.NoError(t, err)
	assert.Equal(t, len(line), n)

	select {
	case got := <-received:
		assert.Equal(t, line, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the mirrored line")
	}
}

func TestLogstashWriterDropsWhenUnreachable(t *testing.T) {
	writer, err := NewLogstashWriter("127.0.0.1:1")
	require.NoError(t, err)
	defer writer.Close()

	n, err := writer.Write([]byte("dropped"))
	assert.NoError(t, err)
	assert.Equal(t, len("dropped"), n)

	// while in cool-down the write is still reported as successful
	n, err = writer.Write([]byte("also dropped"))
	assert.NoError(t, err)
	assert.Equal(t, len("also dropped"), n)
}

func TestLogstashWriterWriteAfterClose(t *testing.T) {
	writer, err := NewLogstashWriter("127.0.0.1:1")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	n, err := writer.Write([]byte("ignored"))
	assert.NoError(t, err)
	assert.Equal(t, len("ignored"), n)
}
