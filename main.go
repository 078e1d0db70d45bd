package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "clockres: ", 0)

	fs := flag.NewFlagSet("clockres", flag.ContinueOnError)
	fs.SetOutput(stderr)
	ppq := fs.Int("ppq", DEFAULT_PPQ, "pulses per quarter note")
	steps := fs.Int("steps", DEFAULT_STEPS, "largest number of equal steps a measure must divide into")
	verbose := fs.Bool("v", false, "show rejected multipliers on stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		logger.Printf("unexpected arguments: %v", fs.Args())
		return 2
	}

	if err := validate(*ppq, *steps); err != nil {
		logger.Print(err)
		return 2
	}

	var observe Observer
	if *verbose {
		observe = newProgressObserver(stderr)
	}

	res := search(*ppq, *steps, observe)
	fmt.Fprintln(stdout, render(stdout, res))
	return 0
}

func validate(ppq, steps int) error {
	if err := ValidPPQ(ppq); err != nil {
		return errors.Wrap(err, "invalid -ppq")
	}
	if err := ValidSteps(steps); err != nil {
		return errors.Wrap(err, "invalid -steps")
	}
	return nil
}

func render(w io.Writer, res Result) string {
	if !isTerminalWriter(w) {
		return res.String()
	}
	color := lipgloss.Color("2")
	if !res.Found {
		color = lipgloss.Color("1")
	}
	return lipgloss.NewRenderer(w).NewStyle().Foreground(color).Render(res.String())
}
