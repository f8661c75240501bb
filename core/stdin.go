package core

import (
	"bytes"
	"io"
	"sync"
)

// lineGate hands stdin to the line editor one line at a time. It shuts
// after passing a chunk that contains the end of a line and stays shut until
// Open, so input typed while a command runs reaches that command.
type lineGate struct {
	r io.Reader

	mu     sync.Mutex
	cond   *sync.Cond
	open   bool
	closed bool
}

func newLineGate(r io.Reader) *lineGate {
	g := &lineGate{r: r}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// Open lets the next read through.
func (g *lineGate) Open() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.open = true
	g.cond.Broadcast()
}

// Read blocks while the gate is shut.
func (g *lineGate) Read(p []byte) (int, error) {
	g.mu.Lock()
	for !g.open && !g.closed {
		g.cond.Wait()
	}
	closed := g.closed
	g.mu.Unlock()
	if closed {
		return 0, io.EOF
	}

	n, err := g.r.Read(p)
	if bytes.ContainsAny(p[:n], "\r\n") {
		g.mu.Lock()
		g.open = false
		g.mu.Unlock()
	}
	return n, err
}

// Close releases blocked readers, the underlying reader is left open.
func (g *lineGate) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	g.cond.Broadcast()
	return nil
}
