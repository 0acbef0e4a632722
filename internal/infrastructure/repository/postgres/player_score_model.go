package postgres

import "database/sql"

type playerScoreRowModel struct {
	ID            int64          `db:"id"`
	PlayerName    string         `db:"player_name"`
	Position      string         `db:"position"`
	TeamID        int64          `db:"team_id"`
	FantasyPoints float64        `db:"fantasy_points"`
	NFLTeam       sql.NullString `db:"nfl_team"`
	MatchupID     sql.NullInt64  `db:"matchup_id"`
}

type playerTotalRowModel struct {
	PlayerName    string  `db:"player_name"`
	TotalPoints   float64 `db:"total_points"`
	Games         int     `db:"games"`
	AveragePoints float64 `db:"average_points"`
}
