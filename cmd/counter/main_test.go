package main

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should reach the bonus even when the collector runs while waiting for it
func TestRunSurvivesGC(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				runtime.GC()
			}
		}
	}()

	start := time.Now()
	err := newCommand().Run(context.Background(), []string{"counter", "--delay", "50ms", "--increments", "2"})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
