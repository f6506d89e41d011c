package main

import (
	"fmt"
	"os"

	"github.com/sergeknystautas/commitedit/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "edit":
		cmd := NewEditCommand()
		if err := cmd.Run(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "show":
		cmd := NewShowCommand()
		if err := cmd.Run(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "version", "-v", "--version":
		fmt.Printf("commitedit v%s\n", version.Version)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("commitedit - edit a commit record's message interactively")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  commitedit <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  edit        Edit a commit record's message in a form")
	fmt.Println("  show        Print a commit record's read-only summary")
	fmt.Println("  version     Show version")
	fmt.Println("  help        Show this help")
	fmt.Println()
	fmt.Println("Run 'commitedit <command> -h' for command flags.")
}
