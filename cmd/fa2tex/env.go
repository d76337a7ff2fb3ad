package main

import (
	"io"
	"net/http"
	"os"
	"sort"

	fa2tex "github.com/alnah/go-fa2tex"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Progress   io.Writer         // download and extraction progress, nil disables it
	HTTPClient *http.Client      // nil uses the library default
	Vars       map[string]string // nil reads the process environment
}

// DefaultEnv returns the production environment. Progress is only drawn
// when stderr is a terminal.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Progress: fa2tex.TerminalProgress(os.Stderr),
	}
}

// varNames lists the names of the environment variables, sorted.
func (e *Environment) varNames() []string {
	vars := e.environ()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
