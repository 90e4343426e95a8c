package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/yutboard/yut/logs"
	"github.com/yutboard/yut/yut"
)

type Command struct {
	shape   string
	players int
	tokens  int
	seed    uint64

	games   int
	cutoff  int
	threads int
	check   bool

	index   string
	parquet string
	summary string
	verbose bool
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play random matches and report statistics" }
func (*Command) Usage() string {
	return `selfplay [flags]

Plays matches in which every player picks uniformly among its legal
moves, then prints per-seat results.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.shape, "shape", "traditional", "board shape")
	flags.IntVar(&c.players, "players", yut.DefaultPlayers, "number of players")
	flags.IntVar(&c.tokens, "tokens", yut.DefaultTokens, "tokens per player")
	flags.Uint64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 100, "number of games to play")
	flags.IntVar(&c.cutoff, "cutoff", 500, "cut games off after how many turns")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of parallel threads")
	flags.BoolVar(&c.check, "check", true, "validate the board after every move")
	flags.StringVar(&c.index, "index", "", "sqlite database to record match summaries in")
	flags.StringVar(&c.parquet, "parquet", "", "write every move to this parquet file")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shape, err := yut.ShapeByName(c.shape)
	if err != nil {
		log.Error().Err(err).Msg("-shape")
		return subcommands.ExitUsageError
	}
	if c.seed == 0 {
		c.seed = uint64(time.Now().Unix())
	}
	cfg := &Config{
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Cutoff:  c.cutoff,
		Check:   c.check,
		Verbose: c.verbose,
		Match: yut.Config{
			Shape:   shape,
			Players: c.players,
			Tokens:  c.tokens,
		},
	}

	start := time.Now()
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("simulate")
		return subcommands.ExitFailure
	}
	run := strconv.FormatUint(c.seed, 10)

	if c.index != "" {
		if err := c.writeIndex(run, shape, st); err != nil {
			log.Error().Err(err).Str("index", c.index).Msg("writing index")
			return subcommands.ExitFailure
		}
	}
	if c.parquet != "" {
		if err := WriteMoves(c.parquet, moveRecords(run, st.Results), 4); err != nil {
			log.Error().Err(err).Str("parquet", c.parquet).Msg("writing moves")
			return subcommands.ExitFailure
		}
	}
	if c.summary != "" {
		if err := writeSummary(c.summary, st); err != nil {
			log.Error().Err(err).Msg("writing summary")
		}
	}

	log.Info().Msgf("done games=%d seed=%d cutoff=%d turns=%d captures=%d elapsed=%s",
		st.Games, c.seed, st.Cutoff, st.Turns, st.Captures, time.Since(start))
	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "seat\twins\tshare\n")
	for i, w := range st.Wins {
		share := 0.0
		if st.Games > 0 {
			share = float64(w) / float64(st.Games)
		}
		fmt.Fprintf(tw, "%d\t%d\t%.3f\n", i+1, w, share)
	}
	tw.Flush()

	return subcommands.ExitSuccess
}

func (c *Command) writeIndex(run string, shape *yut.Shape, st *Stats) error {
	repo, err := logs.Open(c.index)
	if err != nil {
		return err
	}
	defer repo.Close()
	now := time.Now()
	var ms []*logs.Match
	for _, r := range st.Results {
		ms = append(ms, &logs.Match{
			Run:        run,
			Game:       r.Game,
			Timestamp:  now,
			Shape:      shape.Name(),
			Players:    c.players,
			Tokens:     c.tokens,
			Winner:     r.Winner,
			WinnerSeat: r.WinnerSeat,
			Turns:      r.Turns,
			Throws:     r.Throws,
			Moves:      len(r.Moves),
			Captures:   r.Captures,
		})
	}
	return repo.InsertMatches(ms)
}

type Summary struct {
	Cmdline []string
	Stats   *Stats
}

func writeSummary(path string, stats *Stats) error {
	bs, err := json.MarshalIndent(&Summary{Cmdline: os.Args, Stats: stats}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0644)
}
