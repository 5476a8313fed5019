package big2

import (
	"CardCasino/internal/game"
	"CardCasino/internal/game/deck"
)

// roomState 是房间生命周期：等人 / 对局中。
type roomState int

const (
	stateWaiting roomState = iota
	stateActive
)

func (s roomState) String() string {
	if s == stateActive {
		return "ACTIVE"
	}
	return "WAITING"
}

// seat 把一个玩家、他的出牌通道和当前手牌绑在一起。
// 座位顺序即出牌顺序。
type seat struct {
	player game.Player
	out    game.Sender
	hand   []deck.Card
}

// lastPlay 记录上一手被接受的出牌。
type lastPlay struct {
	playerID string
	name     string
	combo    Combination
}

// Room 是一个固定编号的大老二房间。进程启动时建好，
// 之后只在局与局之间重置，从不销毁。
type Room struct {
	id        int
	seats     []*seat
	state     roomState
	turn      int // 只在 ACTIVE 时有意义
	last      *lastPlay
	passCount int
	firstMove bool // 第一手必须包含 3C
	pot       int64
	paid      map[string]bool // 本局已付进桌费的玩家 ID
}

func newRoom(id int) *Room {
	return &Room{
		id:   id,
		paid: make(map[string]bool),
	}
}

// resetHand 清掉本局状态。座位保留（玩家仍在房间里）。
// 调用前必须已把该退的进桌费退完。
func (r *Room) resetHand() {
	for _, s := range r.seats {
		s.hand = nil
	}
	r.state = stateWaiting
	r.turn = 0
	r.last = nil
	r.passCount = 0
	r.firstMove = true
	r.pot = 0
	r.paid = make(map[string]bool)
}

func (r *Room) seatOf(playerID string) (int, *seat) {
	for i, s := range r.seats {
		if s.player.ID() == playerID {
			return i, s
		}
	}
	return -1, nil
}

func (r *Room) removeSeat(idx int) {
	r.seats = append(r.seats[:idx], r.seats[idx+1:]...)
	// 被移走的座位在当前回合之前时，游标要跟着前移一格
	if r.state == stateActive && len(r.seats) > 0 {
		if idx < r.turn {
			r.turn--
		}
		r.turn %= len(r.seats)
	}
}

func (r *Room) broadcast(msg string) {
	for _, s := range r.seats {
		s.out.Send(msg)
	}
}

// advanceTurn 前进一格并回绕。出牌和 PASS 都恰好消耗一个回合。
func (r *Room) advanceTurn() {
	if len(r.seats) == 0 {
		return
	}
	r.turn = (r.turn + 1) % len(r.seats)
}

// openingSeat 返回持有梅花三的座位，找不到时退回 0 号位。
// 整副牌发完时 3C 必然在某家手里。
func (r *Room) openingSeat() int {
	threeOfClubs := deck.Card{Rank: 0, Suit: 0}
	for i, s := range r.seats {
		for _, c := range s.hand {
			if c == threeOfClubs {
				return i
			}
		}
	}
	return 0
}

// RoomInfo 是给管理接口看的房间快照。
type RoomInfo struct {
	ID      int      `json:"id"`
	State   string   `json:"state"`
	Players []string `json:"players"`
	Pot     int64    `json:"pot"`
}
