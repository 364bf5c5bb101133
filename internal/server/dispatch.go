package server

import (
	"pqueue/internal/protocol"
	"pqueue/internal/queue"
)

// dispatch executes a parsed command against the shared queue handle and
// returns the response to write back. This is the one place spec.md §4.E
// calls "dispatch to queue via handle" — it is intentionally thin, since
// all of the interesting logic already lives in the Index and in the
// command/response types themselves.
func dispatch(cmd protocol.Command, h queue.Handle) protocol.Response {
	switch c := cmd.(type) {
	case protocol.UpdateCommand:
		if _, err := h.Update(c.ID, c.Value); err != nil {
			return protocol.ErrorResponse{Msg: protocol.MsgInvalidUpdateVal}
		}
		return protocol.OkResponse{}

	case protocol.NextCommand:
		id, ok := h.Next()
		if !ok {
			id = protocol.Sentinel
		}
		return protocol.ItemResponse{Item: id}

	case protocol.PeekCommand:
		id, ok := h.Peek()
		if !ok {
			id = protocol.Sentinel
		}
		return protocol.ItemResponse{Item: id}

	case protocol.ScoreCommand:
		score, ok := h.Score(c.ID)
		if !ok {
			score = -1
		}
		return protocol.ScoreResponse{Score: score}

	case protocol.InfoCommand:
		return protocol.StatsResponse{Stats: h.Stats()}

	case protocol.HelpCommand:
		return protocol.HelpResponse{}

	case protocol.ErrorCommand:
		return protocol.ErrorResponse{Msg: c.Msg}

	default:
		return protocol.ErrorResponse{Msg: protocol.MsgInvalidCommand}
	}
}
