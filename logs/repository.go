package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

// Repository indexes finished matches in a sqlite database.
type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

// Match summarizes one finished (or cut off) match. WinnerSeat is -1
// when nobody won.
type Match struct {
	ID         int64     `db:"id"`
	Run        string    `db:"run"`
	Game       int       `db:"game"`
	Timestamp  time.Time `db:"time"`
	Shape      string    `db:"shape"`
	Players    int       `db:"players"`
	Tokens     int       `db:"tokens"`
	Winner     string    `db:"winner"`
	WinnerSeat int       `db:"winner_seat"`
	Turns      int       `db:"turns"`
	Throws     int       `db:"throws"`
	Moves      int       `db:"moves"`
	Captures   int       `db:"captures"`
}

type SeatWins struct {
	Seat int `db:"seat"`
	Wins int `db:"wins"`
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(createMatchTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create matches table: %w", err)
	}
	if _, err = db.Exec(createSeatView); err != nil {
		db.Close()
		return nil, fmt.Errorf("create seat_wins view: %w", err)
	}

	repo := &Repository{db: db}
	repo.insert, err = db.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertMatch(m *Match) error {
	_, err := r.insert.Exec(m)
	return err
}

func (r *Repository) InsertMatches(ms []*Match) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, m := range ms {
		if _, e := stmt.Exec(m); e != nil {
			return e
		}
	}
	return txn.Commit()
}

func (r *Repository) Matches(run string) ([]Match, error) {
	var out []Match
	if err := r.db.Select(&out, selectMatches, run); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) SeatWins(run string) ([]SeatWins, error) {
	var out []SeatWins
	if err := r.db.Select(&out, selectSeatWins, run); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Close() error {
	if r.insert != nil {
		r.insert.Close()
	}
	return r.db.Close()
}
