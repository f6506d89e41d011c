package main

import (
	"flag"
	"fmt"
)

// ShowCommand implements the show command.
type ShowCommand struct{}

// NewShowCommand creates a new show command.
func NewShowCommand() *ShowCommand {
	return &ShowCommand{}
}

// Run executes the show command.
func (cmd *ShowCommand) Run(args []string) error {
	var (
		fileFlag   string
		formatFlag string
	)

	fs := flag.NewFlagSet("show", flag.ExitOnError)
	fs.StringVar(&fileFlag, "f", "", "Commit record file, or - for stdin (required)")
	fs.StringVar(&fileFlag, "file", "", "Commit record file, or - for stdin (required)")
	fs.StringVar(&formatFlag, "format", "", "Record format: json or yaml (default: from extension)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := loadRecord(fileFlag, formatFlag)
	if err != nil {
		return err
	}

	fmt.Printf("ID:     %s\n", c.Node)
	fmt.Printf("Author: %s\n", c.DisplayAuthor())
	fmt.Printf("Date:   %s\n", c.DisplayDate())
	if c.Message != "" {
		fmt.Printf("\n%s\n", c.Message)
	}
	return nil
}
