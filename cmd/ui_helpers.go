// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides CLI commands for the Caritas admin console.
// This file contains helper functions for terminal UI during long operations.
package cmd

import (
	"fmt"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// spinnerFrames are the stick-style animation frames used by all spinners.
var spinnerFrames = []string{"|", "/", "-", "\\"}

// startAreaSpinner starts a spinner in a pterm area with the given message.
// It hides the cursor while the spinner runs. The returned function stops
// the spinner, removes the area, and shows the cursor again.
func startAreaSpinner(text string) func() {
	cursor.Hide()
	area, aerr := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if aerr != nil {
		cursor.Show()
		return func() {}
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		i := 0
		for {
			select {
			case <-t.C:
				i++
				area.Update(fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], text))
			case <-stop:
				return
			}
		}
	}()

	return func() {
		close(stop)
		wg.Wait()
		_ = area.Stop()
		cursor.Show()
	}
}
