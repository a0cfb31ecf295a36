package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"

	"dirclip/cmd"
	"dirclip/pkg/logging"

	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	// fang prints the error itself; only the exit code is left to us.
	err := cmd.Execute(ctx)
	stop()
	syncLogger()
	if err != nil {
		os.Exit(1)
	}
}

// syncLogger flushes the global logger. Sync on a terminal or pipe reports
// "invalid argument" on some platforms, so only terminals and regular files are
// synced and that error is swallowed.
func syncLogger() {
	if logging.Logger == nil {
		return
	}
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logging.Logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
