package main

import "fmt"

// version is overridden at release time via -ldflags "-X main.version=...".
var version = "dev"

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "serpscore %s\n", version)
	return nil
}
