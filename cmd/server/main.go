package main

import (
	"github.com/lexgraph/lexgraph/internal/server"
	"github.com/lexgraph/lexgraph/internal/util"
	"github.com/lexgraph/lexgraph/pkg/logger"
	"github.com/lexgraph/lexgraph/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleBackend(console.ConsoleBackendParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
