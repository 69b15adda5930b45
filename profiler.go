package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/charmbracelet/log"
)

// startCPUProfile starts writing a CPU profile to path and returns the func
// that stops it. An empty path profiles nothing.
func startCPUProfile(path string, logger *log.Logger) (func(), error) {
	if path == "" {
		return func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}

	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			logger.Error("failed to close CPU profile", "path", path, "err", err)
			return
		}
		logger.Info("CPU profile saved", "path", path)
	}, nil
}
