package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/jhoicas/Almacen-api/internal/cli"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: os.Stderr})
	cli.Register(commander, &cli.Env{
		Open: cli.OpenFromConfig(log),
		Out:  os.Stdout,
		Err:  os.Stderr,
	})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
