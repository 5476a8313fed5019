package storage

import (
	"database/sql"
	"time"

	"CardCasino/internal/utils"
)

// HandRecord 是一局结算的归档行。
type HandRecord struct {
	ID       int64     `json:"id"`
	RoomID   int       `json:"room_id"`
	Winner   string    `json:"winner"`
	Pot      int64     `json:"pot"`
	PlayedAt time.Time `json:"played_at"`
}

// HandArchive 把结算结果写进 Postgres。可选组件：
// 没配 DSN 时整个归档不启用。
type HandArchive struct {
	db *sql.DB
}

func NewHandArchive(db *sql.DB) (*HandArchive, error) {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS hand_history (
            id        BIGSERIAL PRIMARY KEY,
            room_id   INT         NOT NULL,
            winner    TEXT        NOT NULL,
            pot       BIGINT      NOT NULL,
            played_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`)
	if err != nil {
		return nil, err
	}
	return &HandArchive{db: db}, nil
}

// Record 写一行归档。失败只记日志，牌局不受影响。
func (a *HandArchive) Record(roomID int, winner string, pot int64) {
	_, err := a.db.Exec(
		`INSERT INTO hand_history (room_id, winner, pot) VALUES ($1, $2, $3)`,
		roomID, winner, pot)
	if err != nil {
		utils.Print.Error("hand archive insert failed", "room", roomID, "err", err)
	}
}

// Recent 返回最近 limit 局，给 /admin/hands 用。
func (a *HandArchive) Recent(limit int) ([]HandRecord, error) {
	rows, err := a.db.Query(
		`SELECT id, room_id, winner, pot, played_at
           FROM hand_history ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HandRecord
	for rows.Next() {
		var r HandRecord
		if err := rows.Scan(&r.ID, &r.RoomID, &r.Winner, &r.Pot, &r.PlayedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
