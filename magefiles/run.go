//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens the game window.
func (Run) Window() error {
	_, err := executeCmd("go", withArgs("run", mainPkg, "window", "--log-level", "debug"), withStream())
	return err
}

// Plays in the current terminal.
func (Run) Terminal() error {
	_, err := executeCmd("go", withArgs("run", mainPkg, "play"), withStream())
	return err
}

// Starts the SSH server on :23234.
func (Run) Serve() error {
	_, err := executeCmd("go", withArgs("run", mainPkg, "serve"), withStream())
	return err
}
