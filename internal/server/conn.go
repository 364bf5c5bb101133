package server

import (
	"bufio"
	"log/slog"
	"net"
	"strings"

	"github.com/google/uuid"

	"pqueue/internal/protocol"
	"pqueue/internal/queue"
)

const (
	readBufferSize = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// handleConnection is the per-connection state machine: frame a line,
// decode it, dispatch it through the shared handle, write the response,
// repeat. No pipelining is assumed and no per-operation timeouts are
// imposed (spec.md §4.E, §5) — a connection only ends when either side
// closes it, a read fails (including a line longer than maxLineSize), or a
// write fails.
func handleConnection(conn net.Conn, h queue.Handle, logger *slog.Logger) {
	connID := uuid.New()
	log := logger.With("conn", connID.String(), "remote", conn.RemoteAddr().String())

	defer func() {
		conn.Close()
		log.Debug("connection closed")
	}()

	log.Debug("connection opened")

	scanner := bufio.NewScanner(conn)
	scanner.Split(splitCRLF)
	scanner.Buffer(make([]byte, 0, readBufferSize), maxLineSize)

	for scanner.Scan() {
		line := strings.ToValidUTF8(string(scanner.Bytes()), "�")
		log.Debug("request", "line", line)

		cmd := protocol.Parse(line)
		resp := dispatch(cmd, h)

		if _, err := conn.Write(resp.Bytes()); err != nil {
			log.Debug("write failed", "err", err)
			return
		}
	}

	if err := scanner.Err(); err != nil {
		log.Debug("read failed", "err", err)
	}
}
