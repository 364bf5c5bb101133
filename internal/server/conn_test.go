package server

import (
	"bufio"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pqueue/internal/queue"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// pipeClient wires handleConnection to one end of a net.Pipe and returns a
// request/response helper bound to the other end, avoiding a real socket
// bind for connection-level protocol tests.
func pipeClient(t *testing.T, h queue.Handle) (send func(string) string, done <-chan struct{}) {
	t.Helper()

	serverConn, clientConn := net.Pipe()
	finished := make(chan struct{})

	go func() {
		handleConnection(serverConn, h, testLogger())
		close(finished)
	}()

	reader := bufio.NewReader(clientConn)

	send = func(line string) string {
		_, err := clientConn.Write([]byte(line + "\r\n"))
		require.NoError(t, err)

		resp, err := reader.ReadString('\n')
		require.NoError(t, err)
		return resp
	}

	t.Cleanup(func() {
		clientConn.Close()
	})

	return send, finished
}

func TestConnInsertAndPeek(t *testing.T) {
	send, _ := pipeClient(t, queue.New())

	require.Equal(t, "+OK\r\n", send("UPDATE a 10"))
	require.Equal(t, "+OK\r\n", send("UPDATE b 20"))
	require.Equal(t, "+b\r\n", send("PEEK"))
}

func TestConnMalformedInputDoesNotDisconnect(t *testing.T) {
	send, _ := pipeClient(t, queue.New())

	require.Equal(t, "-Invalid command or arguments\r\n", send("GARBAGE"))
	require.Equal(t, "+OK\r\n", send("UPDATE a 1"))
}

func TestConnClosesOnEOF(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	finished := make(chan struct{})

	go func() {
		handleConnection(serverConn, queue.New(), testLogger())
		close(finished)
	}()

	clientConn.Close()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("handleConnection did not exit after client closed")
	}
}
