// Package main is the entry point of ava.
package main

import (
	"github.com/ava-cli/ava/cmd"
	"github.com/ava-cli/ava/config"
	"github.com/ava-cli/ava/internal/cache"
	"github.com/ava-cli/ava/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
