package backend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned by ParseCommand for text matching none of the commands.
var ErrUnknownCommand = errors.New("unknown command")

// CommandKind identifies one of the recognized commands.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandInfo
	CommandTables
	CommandCount
)

const (
	InfoCommand   = ".dbinfo"
	TablesCommand = ".tables"

	countPrefix = "select count(*)"
	fromKeyword = "from "
)

// Command is a parsed command.
type Command struct {
	Kind CommandKind

	// Table is the target of a count query.
	Table string
}

// ParseCommand matches text against the three literal command shapes.
// Matching is case sensitive.
func ParseCommand(text string) (Command, error) {
	switch {
	case text == InfoCommand:
		return Command{Kind: CommandInfo}, nil
	case text == TablesCommand:
		return Command{Kind: CommandTables}, nil
	case strings.HasPrefix(text, countPrefix) && strings.Contains(text, fromKeyword):
		table := text[strings.Index(text, fromKeyword)+len(fromKeyword):]
		return Command{
			Kind:  CommandCount,
			Table: strings.TrimRight(table, " \t\r\n"),
		}, nil
	}

	return Command{Kind: CommandUnknown}, fmt.Errorf("%q: %w", text, ErrUnknownCommand)
}
