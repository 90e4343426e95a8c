package yuttest

import "github.com/yutboard/yut/yut"

type Offer struct {
	Results []yut.Throw
	Tokens  []*yut.Token
}

// Recorder is a presenter that remembers every call. Designate queues
// the answers to ChooseDesignatedThrow.
type Recorder struct {
	Turns     []string
	Logs      []string
	Offers    []Offer
	Victories []string
	Designate []yut.Throw
}

func (r *Recorder) AnnounceTurn(player string) {
	r.Turns = append(r.Turns, player)
}

func (r *Recorder) Log(msg string) {
	r.Logs = append(r.Logs, msg)
}

func (r *Recorder) ChooseDesignatedThrow() (yut.Throw, bool) {
	if len(r.Designate) == 0 {
		return 0, false
	}
	t := r.Designate[0]
	r.Designate = r.Designate[1:]
	return t, true
}

func (r *Recorder) OfferChoices(results []yut.Throw, tokens []*yut.Token) {
	r.Offers = append(r.Offers, Offer{Results: results, Tokens: tokens})
}

func (r *Recorder) ReportVictory(player string) {
	r.Victories = append(r.Victories, player)
}

func (r *Recorder) LastOffer() Offer {
	if len(r.Offers) == 0 {
		return Offer{}
	}
	return r.Offers[len(r.Offers)-1]
}

func (r *Recorder) LastLog() string {
	if len(r.Logs) == 0 {
		return ""
	}
	return r.Logs[len(r.Logs)-1]
}
