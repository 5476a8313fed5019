package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var ErrNameTaken = errors.New("name already taken")

// Player 是玩家的唯一账本记录：身份 + 筹码余额。
// 余额只通过 Debit/Credit 变动，永不为负。
type Player struct {
	id string

	mu      sync.Mutex
	name    string
	balance int64
}

func (p *Player) ID() string { return p.id }

func (p *Player) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

func (p *Player) Balance() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.balance
}

// Debit 扣款。余额不足时返回 false 且不变动。
func (p *Player) Debit(amount int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.balance < amount {
		return false
	}
	p.balance -= amount
	return true
}

func (p *Player) Credit(amount int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balance += amount
}

// Registry 持有所有在线玩家并保证昵称唯一。
type Registry struct {
	mu       sync.Mutex
	names    map[string]*Player // 已占用的昵称
	starting int64
}

func NewRegistry(startingChips int64) *Registry {
	return &Registry{
		names:    make(map[string]*Player),
		starting: startingChips,
	}
}

// NewPlayer 在连接建立时创建账本记录，昵称稍后用 ClaimName 绑定。
func (r *Registry) NewPlayer() *Player {
	return &Player{
		id:      uuid.NewString(),
		balance: r.starting,
	}
}

// ClaimName 占用昵称。重复昵称返回 ErrNameTaken；
// 玩家改名时自动释放旧昵称。
func (r *Registry) ClaimName(p *Player, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if holder, ok := r.names[name]; ok && holder != p {
		return fmt.Errorf("%w: %s", ErrNameTaken, name)
	}

	p.mu.Lock()
	old := p.name
	p.name = name
	p.mu.Unlock()

	if old != "" {
		delete(r.names, old)
	}
	r.names[name] = p
	return nil
}

// Release 在断线时归还昵称。
func (r *Registry) Release(p *Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := p.Name()
	if name != "" && r.names[name] == p {
		delete(r.names, name)
	}
}
