package logs

const createMatchTable = `
CREATE TABLE IF NOT EXISTS matches (
  id integer primary key autoincrement,
  run string not null,
  game integer not null,
  time datetime,
  shape string,
  players int,
  tokens int,
  winner string,
  winner_seat int,
  turns int,
  throws int,
  moves int,
  captures int
)`

const createSeatView = `
CREATE VIEW IF NOT EXISTS seat_wins (run, seat, wins) AS
SELECT run, winner_seat, COUNT(*)
  FROM matches
 WHERE winner_seat >= 0
 GROUP BY run, winner_seat
`

const insertStmt = `
INSERT INTO matches (run, game, time, shape, players, tokens, winner, winner_seat, turns, throws, moves, captures)
VALUES (:run, :game, :time, :shape, :players, :tokens, :winner, :winner_seat, :turns, :throws, :moves, :captures)
`

const selectMatches = `
SELECT id, run, game, time, shape, players, tokens, winner, winner_seat, turns, throws, moves, captures
  FROM matches
 WHERE run = ?
 ORDER BY game
`

const selectSeatWins = `
SELECT seat, wins FROM seat_wins WHERE run = ? ORDER BY seat
`
