package stats

import (
	"context"
	"time"

	"CardCasino/internal/utils"
)

// Service 把结算事件写进 Repo，并给管理接口提供汇总。
// 实现 big2.Recorder；写入失败只记日志，不影响牌局。
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) RecordHand(roomID int, winnerID, winnerName string, pot int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.repo.RecordHand(ctx, winnerName, pot); err != nil {
		utils.Print.Error("stats record failed", "room", roomID, "winner", winnerName, "err", err)
	}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}
