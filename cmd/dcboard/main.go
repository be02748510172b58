// cmd/dcboard/main.go
package main

import (
	cmd "github.com/ppr-ocean-ia/dcboard/internal/cli"
)

var (
	version = "dev"

	setVersion = func(v string) { cmd.Version = v }
	executeCmd = cmd.Execute
)

// main starts the dcboard CLI application by delegating to the
// cobra root command defined in the dcboard package.
func main() {
	setVersion(version)
	executeCmd()
}
