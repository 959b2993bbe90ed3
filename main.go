// Package main is the entry point for vidsel.
package main

import (
	"github.com/samber/lo"
	"github.com/vidsel/vidsel/cmd"
	"github.com/vidsel/vidsel/config"
	"github.com/vidsel/vidsel/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
