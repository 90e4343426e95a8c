package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yutboard/yut/cmd/internal/paths"
	"github.com/yutboard/yut/cmd/internal/play"
	"github.com/yutboard/yut/cmd/internal/selfplay"
)

var debug = flag.Bool("debug", false, "log debug events")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&paths.Command{}, "")

	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
