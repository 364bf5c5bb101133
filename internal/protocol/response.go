package protocol

import (
	"fmt"
	"time"

	"pqueue/internal/pqueue"
)

// Sentinel is the literal wire value used in place of a typed absence: it
// is what Next/Peek emit on an empty queue and what Score emits for an
// unknown id. See spec.md §4.D "Sentinels" and the GLOSSARY.
const Sentinel = "-1"

// Response is a formatted reply. Every concrete type renders to one or
// more CRLF-terminated lines written in a single conn.Write call.
type Response interface {
	Bytes() []byte
}

// OkResponse is the `+OK\r\n` reply to a successful UPDATE.
type OkResponse struct{}

// ItemResponse carries an id (Next/Peek), or the Sentinel on an empty
// queue.
type ItemResponse struct {
	Item string
}

// ScoreResponse carries a score (SCORE), or -1 for an unknown id.
type ScoreResponse struct {
	Score int64
}

// ErrorResponse is the `-<msg>\r\n` reply to any rejected command.
type ErrorResponse struct {
	Msg string
}

// StatsResponse is the multi-line INFO reply.
type StatsResponse struct {
	Stats pqueue.Stats
}

// HelpResponse is the fixed multi-line usage block.
type HelpResponse struct{}

func (OkResponse) Bytes() []byte {
	return []byte("+OK\r\n")
}

func (r ItemResponse) Bytes() []byte {
	return []byte(fmt.Sprintf("+%s\r\n", r.Item))
}

func (r ScoreResponse) Bytes() []byte {
	return []byte(fmt.Sprintf("+%d\r\n", r.Score))
}

func (r ErrorResponse) Bytes() []byte {
	return []byte(fmt.Sprintf("-%s\r\n", r.Msg))
}

func (r StatsResponse) Bytes() []byte {
	uptimeSecs := int64(r.Stats.Uptime / time.Second)
	return []byte(fmt.Sprintf(
		"+INFO\r\n+uptime:%d\r\n+version:%s\r\n+updates:%d\r\n+items:%d\r\n+pools:%d\r\n",
		uptimeSecs, r.Stats.Version, r.Stats.Updates, r.Stats.Items, r.Stats.Pools,
	))
}

var helpText = "" +
	"+UPDATE <id> <int64> - add delta to id's score, inserting it if new\r\n" +
	"+NEXT - pop and return the highest-scoring id, or -1 if empty\r\n" +
	"+PEEK - return the highest-scoring id without removing it, or -1 if empty\r\n" +
	"+SCORE <id> - return id's current score, or -1 if unknown\r\n" +
	"+INFO - return server statistics\r\n" +
	"+HELP - show this message\r\n"

func (HelpResponse) Bytes() []byte {
	return []byte(helpText)
}
