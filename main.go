// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main is the entry point for the Caritas admin console.
// It manages the content of the public Caritas site through the remote backend.
package main

import (
	"caritas/cli/cmd"
)

// main initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
