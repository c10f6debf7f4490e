package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/joeandaverde/sqlread/internal/backend"
)

type QueryCommand struct {
	Ui     cli.Ui
	Out    io.Writer
	LogOut io.Writer
}

func (c *QueryCommand) Help() string {
	helpText := `
Usage: sqlread [query] [options] <database> <command>

  Runs one command against a database file. Commands:

	.dbinfo                        page size and number of schema rows
	.tables                        names of user tables
	select count(*) from <table>   number of rows on the table's root page

Options:

	-config=""	Configuration file
	-log-level=""	Log level (panic, fatal, error, warn, info, debug, trace)
`

	return strings.TrimSpace(helpText)
}

func (c *QueryCommand) Synopsis() string {
	return "Runs a command against a database file"
}

func (c *QueryCommand) Run(args []string) int {
	var flags logFlags

	cmdFlags := flag.NewFlagSet("query", flag.ContinueOnError)
	cmdFlags.Usage = func() { c.Ui.Error(c.Help()) }
	flags.register(cmdFlags)

	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}

	args = cmdFlags.Args()
	if len(args) != 2 {
		c.Ui.Error("Expected two arguments: <database> <command>")
		return 1
	}

	logger, err := flags.logger(c.LogOut)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error loading configuration: %s", err))
		return 1
	}

	dbEngine, err := backend.Start(logger, args[0])
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error opening database: %s", err))
		return 1
	}

	if err := dbEngine.Exec(c.Out, args[1]); err != nil {
		logger.WithError(err).Debug("query failed")
		c.Ui.Error(fmt.Sprintf("Error: %s", err))
		return 1
	}

	return 0
}
