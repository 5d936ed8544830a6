// Package sshtty adapts a gliderlabs/ssh session into a tcell.Tty so the
// loot picker form can render over SSH exactly as it does on a local
// terminal.
package sshtty

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty over one SSH session. Reads come from the client's
// keyboard, writes go to its terminal, and window-change messages feed
// tcell's resize handling.
type Tty struct {
	session gossh.Session

	mu     sync.Mutex
	width  int
	height int
	resize func()
}

// New wraps an SSH session as a tcell Tty. pty carries the initial window
// size; winCh delivers resizes for the life of the session. A watcher
// goroutine drains winCh until the channel closes with the session.
func New(session gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	t := &Tty{
		session: session,
		width:   pty.Window.Width,
		height:  pty.Window.Height,
	}
	go t.watchResizes(winCh)
	return t
}

func (t *Tty) watchResizes(winCh <-chan gossh.Window) {
	for win := range winCh {
		t.mu.Lock()
		t.width, t.height = win.Width, win.Height
		cb := t.resize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

// Read pulls raw input bytes from the client.
func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write pushes rendered output to the client.
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the underlying SSH channel.
func (t *Tty) Close() error { return t.session.Close() }

// Start and Stop are no-ops: the SSH channel is opened and torn down by the
// server handler, not by tcell.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }

// Drain is a no-op; session writes are not buffered on our side.
func (t *Tty) Drain() error { return nil }

// WindowSize reports the client's current terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.width, Height: t.height}, nil
}

// NotifyResize registers the callback tcell wants invoked after each
// window-change message.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()
}
