package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"pedit/config"
	"pedit/editor"
)

func main() {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	logFile := openLog(cfg.LogFile)
	if logFile != nil {
		defer logFile.Close()
	}
	if cfgErr != nil {
		log.Printf("Config: %v, using defaults", cfgErr)
	}

	s := editor.New(cfg)
	if err := s.Run(os.Args[1:]); err != nil {
		log.Printf("Session: %v", err)
		if errors.Is(err, editor.ErrUnsupportedTerminal) {
			fmt.Println("Your terminal does not support color.")
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// openLog sends the standard logger to path. The terminal belongs to the
// editor, so when the file cannot be opened the log is dropped.
func openLog(path string) *os.File {
	log.SetOutput(io.Discard)
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
