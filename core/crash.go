// Package core provides goroutine launch and crash reporting shared by the binary's loops
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
	reporting   bool

	// Replaced in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashScreen registers the terminal to restore before a crash report is printed
func SetCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// InitReporting enables sentry crash reports, a blank dsn leaves reporting off
func InitReporting(dsn, release string) error {
	if dsn == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     dsn,
		Release: release,
	}); err != nil {
		return fmt.Errorf("failed to init sentry: %w", err)
	}
	crashMu.Lock()
	reporting = true
	crashMu.Unlock()
	return nil
}

// FlushReporting drains buffered reports before exit
func FlushReporting() {
	crashMu.Lock()
	on := reporting
	crashMu.Unlock()
	if on {
		sentry.Flush(2 * time.Second)
	}
}

// HandleCrash restores the terminal, reports the panic and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen, on := crashScreen, reporting
	crashMu.Unlock()

	if screen != nil {
		screen.Fini()
	}

	if on {
		hub := sentry.CurrentHub().Clone()
		hub.Recover(r)
		hub.Flush(5 * time.Second)
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash restores the terminal
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
