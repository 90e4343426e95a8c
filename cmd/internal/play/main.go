package play

import (
	"bufio"
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/yutboard/yut/cli"
	"github.com/yutboard/yut/yut"
)

type Command struct {
	shape   string
	players int
	tokens  int
	names   string
	seed    uint64
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play yut from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play yut on the command-line. Type "help" at the prompt for commands.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.shape, "shape", "traditional", "board shape: "+strings.Join(yut.ShapeNames(), ", "))
	flags.IntVar(&c.players, "players", 0, "number of players (default: 2, or one per name)")
	flags.IntVar(&c.tokens, "tokens", yut.DefaultTokens, "tokens per player")
	flags.StringVar(&c.names, "names", "", "comma-separated player names")
	flags.Uint64Var(&c.seed, "seed", 0, "random seed for throws")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shape, err := yut.ShapeByName(c.shape)
	if err != nil {
		log.Error().Err(err).Msg("-shape")
		return subcommands.ExitUsageError
	}
	var names []string
	if c.names != "" {
		names = strings.Split(c.names, ",")
	}
	if c.seed == 0 {
		c.seed = uint64(time.Now().UnixNano())
	}
	logger := log.Logger
	st := &cli.CLI{
		Config: yut.Config{
			Shape:   shape,
			Players: c.players,
			Tokens:  c.tokens,
			Names:   names,
		},
		Thrower: yut.NewRandomThrower(c.seed),
		Out:     os.Stdout,
		In:      bufio.NewReader(os.Stdin),
		Logger:  &logger,
	}
	if _, err := st.Play(); err != nil {
		log.Error().Err(err).Msg("play")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
