package postgres

import "database/sql"

type teamTableModel struct {
	TeamID   int64         `db:"team_id"`
	TeamName string        `db:"team_name"`
	UserID   sql.NullInt64 `db:"user_id"`
	Roster   string        `db:"roster"`
}

type teamStatsRowModel struct {
	teamTableModel
	TotalWins     int `db:"total_wins"`
	TotalLosses   int `db:"total_losses"`
	Championships int `db:"championships"`
	SeasonsPlayed int `db:"seasons_played"`
	BestRank      int `db:"best_rank"`
}
