// lootpick-server serves the loot picker form over SSH. The table file is
// parsed once at startup; every connection gets its own form and RNG over the
// shared immutable table. Build:
//
//	go build -o lootpick-server ./cmd/server
//
// Usage:
//
//	./lootpick-server [--port 2222] [--key server_host_key] <table-file>
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	cryptorand "crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"lootpick/internal/form"
	"lootpick/internal/loot"
	"lootpick/internal/sshtty"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lootpick-server [--port 2222] [--key server_host_key] <table-file>")
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("open table: %v", err)
	}
	table, err := loot.Parse(f)
	f.Close()
	if err != nil {
		log.Fatalf("parse %s: %v", flag.Arg(0), err)
	}
	log.Printf("Loaded %s table with %d entries from %s", table.Mode, len(table.Entries), flag.Arg(0))

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, table)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — appropriate for a private home server.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("lootpick SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// ─── sessions ───────────────────────────────────────────────────────────────

// allowedTerms lists the TERM values we are willing to look up terminfo for.
// Anything else is refused rather than trusted as a filesystem path fragment.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// handleSession runs one picker form for one SSH connection. It blocks for
// the duration of the connection. The table is shared across sessions and
// never written; the RNG is per-session.
func handleSession(s gossh.Session, table *loot.Table) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "The picker needs a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := sessionTerm(s)
	if !allowedTerms[term] {
		fmt.Fprintf(s, "Unsupported TERM %q.\n", term)
		return
	}

	name := sanitizeName(s.User())
	log.Printf("session start: %s (%s)", name, s.RemoteAddr())
	defer log.Printf("session end: %s", name)

	// TERM must be set in the process environment before
	// NewTerminfoScreenFromTty; serialize around the Setenv.
	tty := sshtty.New(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	form.New(screen, table, rng).Run()
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// sessionTerm extracts TERM from the session environment.
func sessionTerm(s gossh.Session) string {
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			return env[5:]
		}
	}
	return "xterm-256color"
}

// sanitizeName strips control characters from an SSH username and caps it at
// 16 bytes, so client-supplied names are safe to log.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	for len(out) > 16 {
		runes := []rune(out)
		out = string(runes[:len(runes)-1])
	}
	return out
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(cryptorand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "lootpick server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
