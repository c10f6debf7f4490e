package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/cli"
	"gopkg.in/yaml.v2"

	"github.com/joeandaverde/sqlread/internal/backend"
)

type SchemaCommand struct {
	Ui     cli.Ui
	Out    io.Writer
	LogOut io.Writer
}

func (c *SchemaCommand) Help() string {
	helpText := `
Usage: sqlread schema [options] <database>

  Prints every row of the schema table as YAML.

Options:

	-config=""	Configuration file
	-log-level=""	Log level
`

	return strings.TrimSpace(helpText)
}

func (c *SchemaCommand) Synopsis() string {
	return "Prints the schema table of a database file"
}

func (c *SchemaCommand) Run(args []string) int {
	var flags logFlags

	cmdFlags := flag.NewFlagSet("schema", flag.ContinueOnError)
	cmdFlags.Usage = func() { c.Ui.Error(c.Help()) }
	flags.register(cmdFlags)

	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}

	args = cmdFlags.Args()
	if len(args) != 1 {
		c.Ui.Error("Expected one argument: <database>")
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

	rows, err := dbEngine.Schema()
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error: %s", err))
		return 1
	}

	out, err := yaml.Marshal(rows)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error encoding schema: %s", err))
		return 1
	}

	if _, err := c.Out.Write(out); err != nil {
		return 1
	}

	return 0
}
