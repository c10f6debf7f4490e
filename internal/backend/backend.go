package backend

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Exec runs a command and writes its output to w. Output is buffered and
// only written once the whole query succeeded. Unrecognized commands are
// ignored and write nothing.
func (e *Engine) Exec(w io.Writer, text string) error {
	cmd, err := ParseCommand(text)
	if err != nil {
		e.log.WithError(err).Debug("ignoring command")
		return nil
	}

	var out bytes.Buffer

	switch cmd.Kind {
	case CommandInfo:
		info, err := e.Info()
		if err != nil {
			return err
		}
		fmt.Fprintf(&out, "database page size: %d\n", info.PageSize)
		fmt.Fprintf(&out, "number of tables: %d\n", info.NumTables)

	case CommandTables:
		names, err := e.Tables()
		if err != nil {
			return err
		}
		out.WriteString(strings.Join(names, " "))
		out.WriteByte('\n')

	case CommandCount:
		n, err := e.Count(cmd.Table)
		if err != nil {
			return err
		}
		fmt.Fprintf(&out, "%d\n", n)
	}

	_, err = out.WriteTo(w)
	return err
}
