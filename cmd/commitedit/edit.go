package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/sergeknystautas/commitedit/internal/commit"
	"github.com/sergeknystautas/commitedit/internal/editform"
)

// EditCommand implements the edit command.
type EditCommand struct {
	logger *log.Logger
}

// NewEditCommand creates a new edit command.
func NewEditCommand() *EditCommand {
	return &EditCommand{
		logger: log.New(os.Stderr),
	}
}

// Run executes the edit command.
func (cmd *EditCommand) Run(args []string) error {
	var (
		fileFlag    string
		formatFlag  string
		outputFlag  string
		quickFlag   bool
		verboseFlag bool
	)

	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	fs.StringVar(&fileFlag, "f", "", "Commit record file, or - for stdin (required)")
	fs.StringVar(&fileFlag, "file", "", "Commit record file, or - for stdin (required)")
	fs.StringVar(&formatFlag, "format", "", "Record format: json or yaml (default: from extension)")
	fs.StringVar(&outputFlag, "o", "", "Write the edited record to this file instead of stdout")
	fs.StringVar(&outputFlag, "output", "", "Write the edited record to this file instead of stdout")
	fs.BoolVar(&quickFlag, "quick", false, "One-shot edit form instead of the live editor")
	fs.BoolVar(&verboseFlag, "verbose", false, "Log each edit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if verboseFlag {
		cmd.logger.SetLevel(log.DebugLevel)
	}

	if fileFlag == "-" {
		// The editor needs the terminal the record would be piped through.
		return fmt.Errorf("cannot edit interactively when the record is read from stdin")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("edit requires an interactive terminal (use show for scripted output)")
	}

	c, err := loadRecord(fileFlag, formatFlag)
	if err != nil {
		return err
	}

	cmd.logger.Debug("loaded record", "node", c.Node, "author", c.DisplayAuthor())

	var edited commit.Commit
	if quickFlag {
		edited, err = editform.EditOnce(c)
	} else {
		onChange := func(updated commit.Commit) {
			cmd.logger.Debug("message edited", "node", updated.Node, "length", len(updated.Message))
		}
		// Render on stderr so the edited record can go to stdout.
		edited, err = editform.Run(c, onChange, tea.WithOutput(os.Stderr))
	}
	if err != nil {
		return fmt.Errorf("edit failed: %w", err)
	}

	return writeRecord(edited, outputFlag)
}

// loadRecord reads the commit record from a file or stdin.
func loadRecord(file, format string) (commit.Commit, error) {
	if file == "" {
		return commit.Commit{}, fmt.Errorf("required flag -f (--file) not provided")
	}
	if file == "-" {
		if format == "" {
			format = commit.FormatJSON
		}
		return commit.Decode(os.Stdin, format)
	}
	return commit.Load(file, format)
}

// writeRecord emits the edited record as JSON to stdout or a file.
func writeRecord(c commit.Commit, output string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	data = append(data, '\n')

	if output == "" || output == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
