package turn

import "github.com/yutboard/yut/yut"

// A Presenter shows the game to the players. The engine calls it
// synchronously; answers to OfferChoices arrive later as Move or
// EndTurn calls on the Engine.
type Presenter interface {
	AnnounceTurn(player string)
	Log(msg string)
	// ChooseDesignatedThrow asks the player to declare a throw instead
	// of drawing one. ok is false if they declined.
	ChooseDesignatedThrow() (t yut.Throw, ok bool)
	OfferChoices(results []yut.Throw, tokens []*yut.Token)
	ReportVictory(player string)
}

// NopPresenter ignores everything and never designates a throw.
type NopPresenter struct{}

func (NopPresenter) AnnounceTurn(string)                      {}
func (NopPresenter) Log(string)                               {}
func (NopPresenter) ChooseDesignatedThrow() (yut.Throw, bool) { return 0, false }
func (NopPresenter) OfferChoices([]yut.Throw, []*yut.Token)   {}
func (NopPresenter) ReportVictory(string)                     {}
