package stats

import (
	"context"
	"sync"
)

type memRepo struct {
	mu      sync.Mutex
	hands   int64
	biggest int64
	wins    map[string]int64
}

// NewMemoryRepo 返回内存实现，单机部署与测试用。
func NewMemoryRepo() Repo {
	return &memRepo{wins: make(map[string]int64)}
}

func (m *memRepo) RecordHand(ctx context.Context, winner string, pot int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hands++
	if pot > m.biggest {
		m.biggest = pot
	}
	m.wins[winner]++
	return nil
}

func (m *memRepo) Summary(ctx context.Context) (Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wins := make(map[string]int64, len(m.wins))
	for k, v := range m.wins {
		wins[k] = v
	}
	return Summary{HandsPlayed: m.hands, BiggestPot: m.biggest, TopWinners: wins}, nil
}
