package turn

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/yutboard/yut/yut"
)

// Choice is one legal pairing of a throw result with a token.
type Choice struct {
	Throw yut.Throw
	Token *yut.Token
}

// Outcome describes an applied move.
type Outcome struct {
	yut.Step
	Throw yut.Throw
	Won   bool
}

type Option func(*Engine)

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// Engine runs the turns of a match. It is not safe for concurrent
// use; callers sharing one must serialize their requests.
type Engine struct {
	match  *yut.Match
	throws yut.Thrower
	ui     Presenter
	log    zerolog.Logger

	state  State
	winner *yut.Player
}

func New(m *yut.Match, throws yut.Thrower, ui Presenter, opts ...Option) *Engine {
	if ui == nil {
		ui = NopPresenter{}
	}
	e := &Engine{
		match:  m,
		throws: throws,
		ui:     ui,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Engine) Match() *yut.Match { return e.match }
func (e *Engine) Over() bool        { return e.winner != nil }

func (e *Engine) State() State {
	return e.state.clone()
}

func (e *Engine) Winner() (*yut.Player, bool) {
	return e.winner, e.winner != nil
}

// Start announces the first turn.
func (e *Engine) Start() {
	p := e.match.Current()
	e.log.Debug().Str("player", p.Name).Str("shape", e.match.Shape().Name()).Msg("match start")
	e.ui.AnnounceTurn(p.Name)
	e.present()
}

// Throw draws a throw from the engine's thrower.
func (e *Engine) Throw() error {
	if e.Over() {
		return ErrGameOver
	}
	if !e.state.CanThrow() {
		e.reject(ErrNoThrow)
		return ErrNoThrow
	}
	return e.ThrowAs(e.throws.Throw())
}

// ThrowDesignated asks the presenter for the throw to record.
func (e *Engine) ThrowDesignated() error {
	if e.Over() {
		return ErrGameOver
	}
	if !e.state.CanThrow() {
		e.reject(ErrNoThrow)
		return ErrNoThrow
	}
	t, ok := e.ui.ChooseDesignatedThrow()
	if !ok {
		e.present()
		return ErrNoDesignation
	}
	return e.ThrowAs(t)
}

// ThrowAs records t as the current player's throw.
func (e *Engine) ThrowAs(t yut.Throw) error {
	if e.Over() {
		return ErrGameOver
	}
	next, err := e.state.Throw(t)
	if err != nil {
		e.reject(err)
		return err
	}
	e.state = next
	p := e.match.Current()
	e.log.Debug().Str("player", p.Name).Stringer("throw", t).Msg("throw")
	e.ui.Log(fmt.Sprintf("%s threw %s", p.Name, t))
	if t.Bonus() {
		e.ui.Log(fmt.Sprintf("%s throws again", p.Name))
	}
	e.offer()
	return nil
}

func (e *Engine) validate(t yut.Throw, tok *yut.Token) error {
	if !e.state.Has(t) {
		return fmt.Errorf("%w: %s", ErrStaleThrow, t)
	}
	if tok == nil || tok.Owner() != e.match.Current() {
		return fmt.Errorf("%w: %v", ErrNotOwner, tok)
	}
	if tok.Finished() {
		return fmt.Errorf("%w: %s", ErrTokenFinished, tok)
	}
	if tok.Cell() == yut.Start && t.Steps() < 0 {
		return fmt.Errorf("%w: %s", yut.ErrBackwardFromStart, tok)
	}
	return nil
}

// Move spends the throw t moving tok and every token carried with it.
func (e *Engine) Move(t yut.Throw, tok *yut.Token) (*Outcome, error) {
	if e.Over() {
		return nil, ErrGameOver
	}
	if err := e.validate(t, tok); err != nil {
		e.reject(err)
		return nil, err
	}
	path, err := yut.Resolve(e.match.Shape(), tok.Cell(), tok.Context(), t.Steps())
	if err != nil {
		e.reject(err)
		return nil, err
	}
	out := &Outcome{
		Step:  e.match.Board().Move(tok, path),
		Throw: t,
	}
	p := tok.Owner()
	e.log.Debug().
		Str("player", p.Name).
		Stringer("throw", t).
		Stringer("token", tok).
		Int("carried", len(out.Group)).
		Stringer("from", out.From).
		Stringer("to", out.To).
		Int("captured", len(out.Captured)).
		Msg("move")
	e.ui.Log(describe(out))

	if p.Done() {
		out.Won = true
		e.winner = p
		e.state = State{}
		e.log.Info().Str("player", p.Name).Msg("victory")
		e.ui.ReportVictory(p.Name)
		return out, nil
	}

	e.state, err = e.state.Apply(t, len(out.Captured) > 0)
	if err != nil {
		panic(fmt.Sprintf("apply validated throw: %v", err))
	}
	if len(out.Captured) > 0 {
		e.ui.Log(fmt.Sprintf("%s earns a bonus throw", p.Name))
	}
	e.offer()
	return out, nil
}

func describe(o *Outcome) string {
	who := o.Token.String()
	if len(o.Group) > 1 {
		var names []string
		for _, t := range o.Group {
			names = append(names, t.String())
		}
		who = fmt.Sprint(names)
	}
	msg := fmt.Sprintf("%s moves %s from %s to %s", o.Token.Owner().Name, who, o.From, o.To)
	for _, c := range o.Captured {
		msg += fmt.Sprintf(", capturing %s", c)
	}
	return msg
}

// EndTurn ends the current burst. The player keeps the turn while
// bonus throws remain.
func (e *Engine) EndTurn() error {
	if e.Over() {
		return ErrGameOver
	}
	e.endTurn()
	return nil
}

func (e *Engine) endTurn() {
	p := e.match.Current()
	next, again := e.state.End()
	e.state = next
	if again {
		e.log.Debug().Str("player", p.Name).Int("bonus", next.Bonus).Msg("bonus burst")
		e.ui.Log(fmt.Sprintf("%s has %d bonus throw(s)", p.Name, next.Bonus))
	} else {
		p = e.match.Advance()
		e.log.Debug().Str("player", p.Name).Msg("turn")
	}
	e.ui.AnnounceTurn(p.Name)
	e.present()
}

// Legal lists the moves available with the current results.
func (e *Engine) Legal() []Choice {
	var out []Choice
	var seen []yut.Throw
	for _, t := range e.state.Results {
		if slices.Contains(seen, t) {
			continue
		}
		seen = append(seen, t)
		for _, tok := range e.movable() {
			if tok.Cell() == yut.Start && t.Steps() < 0 {
				continue
			}
			out = append(out, Choice{Throw: t, Token: tok})
		}
	}
	return out
}

func (e *Engine) movable() []*yut.Token {
	var out []*yut.Token
	for _, t := range e.match.Current().Tokens() {
		if !t.Finished() {
			out = append(out, t)
		}
	}
	return out
}

// offer presents the current choices, or ends the burst when nothing
// can be done.
func (e *Engine) offer() {
	if len(e.Legal()) == 0 && !e.state.CanThrow() {
		e.endTurn()
		return
	}
	e.present()
}

func (e *Engine) present() {
	e.ui.OfferChoices(slices.Clone(e.state.Results), e.movable())
}

func (e *Engine) reject(err error) {
	e.log.Debug().Err(err).Str("player", e.match.Current().Name).Msg("rejected")
	e.ui.Log(fmt.Sprintf("rejected: %v", err))
	e.present()
}
