package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

func ValidPPQ(input int) error {
	if input <= MIN_PPQ || input >= MAX_PPQ {
		return errors.Errorf("ppq %d is not valid make sure its above %v and below %v", input, MIN_PPQ, MAX_PPQ)
	}
	return nil
}

func ValidSteps(input int) error {
	if input <= MIN_STEPS || input >= MAX_STEPS {
		return errors.Errorf("steps %d is not valid make sure its above %v and below %v", input, MIN_STEPS, MAX_STEPS)
	}
	return nil
}

func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && IsTerminal(f)
}
