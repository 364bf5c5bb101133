// Package protocol implements the line-oriented wire protocol: parsing
// request lines into typed commands and formatting typed responses back
// into wire lines. See spec.md §4.D for the full grammar.
package protocol

// Command is a parsed request line. Parsing never fails outright — a
// malformed line becomes an ErrorCommand, which is dispatched like any
// other command and surfaces as an error response without closing the
// connection (spec.md §4.E).
type Command interface {
	isCommand()
}

// UpdateCommand carries the `UPDATE <id> <int64>` request.
type UpdateCommand struct {
	ID    string
	Value int64
}

// NextCommand carries the `NEXT` request.
type NextCommand struct{}

// PeekCommand carries the `PEEK` request.
type PeekCommand struct{}

// ScoreCommand carries the `SCORE <id>` request.
type ScoreCommand struct {
	ID string
}

// InfoCommand carries the `INFO` request.
type InfoCommand struct{}

// HelpCommand carries the `HELP` request.
type HelpCommand struct{}

// ErrorCommand represents any request that failed to parse: unknown verb,
// wrong arity, or a malformed UPDATE value.
type ErrorCommand struct {
	Msg string
}

func (UpdateCommand) isCommand() {}
func (NextCommand) isCommand()   {}
func (PeekCommand) isCommand()   {}
func (ScoreCommand) isCommand()  {}
func (InfoCommand) isCommand()   {}
func (HelpCommand) isCommand()   {}
func (ErrorCommand) isCommand()  {}

// Error messages. Kept as constants since the wire format pins their exact
// text (spec.md §7).
const (
	MsgInvalidCommand   = "Invalid command or arguments"
	MsgInvalidUpdateVal = "Invalid value for UPDATE"
)
