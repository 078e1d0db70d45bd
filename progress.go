package main

import (
	"fmt"
	"io"
	"log"

	"github.com/gosuri/uilive"
)

// liveProgress keeps a single status line on a terminal, rewritten for
// every rejected multiplier.
type liveProgress struct {
	w *uilive.Writer
}

func newLiveProgress(out io.Writer) *liveProgress {
	w := uilive.New()
	w.Out = out
	return &liveProgress{w: w}
}

func (p *liveProgress) Observe(m, step int) {
	fmt.Fprintf(p.w, "m=%d collides at step %d\n", m, step)
	p.w.Flush()
}

// newProgressObserver picks the live writer for terminals and plain log
// lines for everything else.
func newProgressObserver(out io.Writer) Observer {
	if isTerminalWriter(out) {
		return newLiveProgress(out).Observe
	}
	logger := log.New(out, "", 0)
	return func(m, step int) {
		logger.Printf("m=%d collides at step %d", m, step)
	}
}
