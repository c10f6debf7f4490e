package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/cli"
)

func main() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run dispatches args to a command and returns the exit code. Arguments that
// do not start with a command name are handed to the query command, so
// `sqlread <database> <command>` works without naming it.
func Run(args []string, stdout, stderr io.Writer) int {
	ui := &cli.BasicUi{
		Writer:      stdout,
		ErrorWriter: stderr,
	}

	commands := map[string]cli.CommandFactory{
		"query": func() (cli.Command, error) {
			return &QueryCommand{Ui: ui, Out: stdout, LogOut: stderr}, nil
		},
		"schema": func() (cli.Command, error) {
			return &SchemaCommand{Ui: ui, Out: stdout, LogOut: stderr}, nil
		},
	}

	if len(args) == 0 || commands[args[0]] == nil {
		args = append([]string{"query"}, args...)
	}

	sqlreadCLI := &cli.CLI{
		Name:       "sqlread",
		Args:       args,
		Commands:   commands,
		HelpFunc:   cli.BasicHelpFunc("sqlread"),
		HelpWriter: stderr,
	}

	exitCode, err := sqlreadCLI.Run()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %s\n", err.Error())
		return 1
	}

	return exitCode
}
