package protocol

import (
	"strconv"
	"strings"
)

// Parse tokenizes a request line on ASCII whitespace runs and matches the
// verb case-insensitively. Every other token (ids, numeric literals) is
// case-sensitive. Any mismatch — unknown verb, wrong arity, a value that
// doesn't fit in an int64 — yields an ErrorCommand rather than an error
// return, since protocol errors never terminate the connection (spec.md
// §4.E, §7).
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ErrorCommand{Msg: MsgInvalidCommand}
	}

	verb := strings.ToUpper(fields[0])
	args := fields[1:]

	switch verb {
	case "UPDATE":
		if len(args) != 2 {
			return ErrorCommand{Msg: MsgInvalidCommand}
		}
		value, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return ErrorCommand{Msg: MsgInvalidUpdateVal}
		}
		return UpdateCommand{ID: args[0], Value: value}

	case "NEXT":
		if len(args) != 0 {
			return ErrorCommand{Msg: MsgInvalidCommand}
		}
		return NextCommand{}

	case "PEEK":
		if len(args) != 0 {
			return ErrorCommand{Msg: MsgInvalidCommand}
		}
		return PeekCommand{}

	case "SCORE":
		if len(args) != 1 {
			return ErrorCommand{Msg: MsgInvalidCommand}
		}
		return ScoreCommand{ID: args[0]}

	case "INFO":
		if len(args) != 0 {
			return ErrorCommand{Msg: MsgInvalidCommand}
		}
		return InfoCommand{}

	case "HELP":
		if len(args) != 0 {
			return ErrorCommand{Msg: MsgInvalidCommand}
		}
		return HelpCommand{}

	default:
		return ErrorCommand{Msg: MsgInvalidCommand}
	}
}
