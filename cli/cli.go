package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yutboard/yut/turn"
	"github.com/yutboard/yut/yut"
)

// CLI plays a match on a terminal: it reads commands from In and
// writes the board and messages to Out.
type CLI struct {
	Config  yut.Config
	Thrower yut.Thrower
	Out     io.Writer
	In      *bufio.Reader
	Logger  *zerolog.Logger

	engine *turn.Engine
	quit   bool
}

var title = cases.Title(language.English)

func (c *CLI) Play() (*yut.Match, error) {
	m, err := yut.NewMatch(c.Config)
	if err != nil {
		return nil, err
	}
	c.quit = false
	var opts []turn.Option
	if c.Logger != nil {
		opts = append(opts, turn.WithLogger(*c.Logger))
	}
	c.engine = turn.New(m, c.Thrower, c, opts...)
	c.engine.Start()
	for !c.engine.Over() && !c.quit {
		fmt.Fprintf(c.Out, "%s> ", m.Current().Name)
		line, err := c.In.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			if e := c.command(line); e != nil {
				fmt.Fprintln(c.Out, "parse error:", e)
			}
		}
		if err == io.EOF {
			fmt.Fprintln(c.Out)
			break
		}
		if err != nil {
			return m, err
		}
	}
	return m, nil
}

func (c *CLI) AnnounceTurn(player string) {
	fmt.Fprintf(c.Out, "\n== %s's turn ==\n", player)
}

func (c *CLI) Log(msg string) {
	fmt.Fprintln(c.Out, msg)
}

func (c *CLI) ChooseDesignatedThrow() (yut.Throw, bool) {
	for {
		fmt.Fprintf(c.Out, "designate throw (blank to cancel)> ")
		line, err := c.In.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return 0, false
		}
		t, e := yut.ParseThrow(line)
		if e == nil {
			return t, true
		}
		fmt.Fprintln(c.Out, "parse error:", e)
		if err != nil {
			return 0, false
		}
	}
}

func (c *CLI) OfferChoices(results []yut.Throw, tokens []*yut.Token) {
	RenderBoard(c.Out, c.engine.Match())
	if len(results) > 0 {
		var names []string
		for _, t := range results {
			names = append(names, ThrowName(t))
		}
		fmt.Fprintf(c.Out, "results: %s\n", strings.Join(names, ", "))
	}
	var toks []string
	for _, t := range tokens {
		toks = append(toks, fmt.Sprintf("%s@%s", t, t.Cell()))
	}
	fmt.Fprintf(c.Out, "tokens: %s\n", strings.Join(toks, " "))
	if c.engine.State().CanThrow() {
		fmt.Fprintln(c.Out, "you may throw")
	}
}

func (c *CLI) ReportVictory(player string) {
	fmt.Fprintf(c.Out, "\nGame Over! %s wins.\n", player)
}

// ThrowName renders a throw for display, e.g. "Quad (yut)".
func ThrowName(t yut.Throw) string {
	return fmt.Sprintf("%s (%s)", title.String(t.String()), t.Traditional())
}

func RenderBoard(out io.Writer, m *yut.Match) {
	b := m.Board()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play, %s board]\n", m.Current().Name, m.Shape().Name())
	w := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	for _, c := range m.Shape().Cells() {
		occ := b.Occupants(c)
		if len(occ) == 0 {
			continue
		}
		var names []string
		for _, t := range occ {
			names = append(names, t.String())
		}
		fmt.Fprintf(w, "%s\t[%s]\n", c, strings.Join(names, " "))
	}
	w.Flush()
	w = tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	fmt.Fprintf(w, "\tstart\tfinished\n")
	for _, p := range m.Players() {
		var start, done int
		for _, t := range p.Tokens() {
			switch t.Cell() {
			case yut.Start:
				start++
			case yut.Finish:
				done++
			}
		}
		fmt.Fprintf(w, "%s\t%d\t%d\n", p.Name, start, done)
	}
	w.Flush()
}
