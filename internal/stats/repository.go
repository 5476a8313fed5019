package stats

import "context"

// Summary 是管理接口看到的聚合数字。
type Summary struct {
	HandsPlayed int64            `json:"hands_played"`
	BiggestPot  int64            `json:"biggest_pot"`
	TopWinners  map[string]int64 `json:"top_winners"` // 昵称 -> 胜场数
}

// Repo 定义对局统计的抽象存储。只做运营侧计数，
// 牌局本身的状态从不落盘。
type Repo interface {
	// RecordHand 记一局：局数 +1、更新最大底池、赢家胜场 +1。
	RecordHand(ctx context.Context, winner string, pot int64) error
	// Summary 返回当前聚合值。
	Summary(ctx context.Context) (Summary, error)
}
