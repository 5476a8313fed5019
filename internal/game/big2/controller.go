package big2

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"CardCasino/internal/game"
	"CardCasino/internal/game/deck"
)

// Options 是一个游戏类型的固定参数。
type Options struct {
	BuyIn     int64
	TableSize int
	MaxRooms  int
}

// Recorder 在结算后收到一条对局事实。实现方自己决定落到
// 哪里（统计、归档），调用发生在锁外的 goroutine 里。
type Recorder interface {
	RecordHand(roomID int, winnerID, winnerName string, pot int64)
}

// Controller 持有 BIG2 全部共享状态。所有入口（Enter/Leave/Handle）
// 都在同一把锁下执行：任何一条指令相对该游戏类型的其他指令都是
// 原子的，包括别的房间的指令。要并行可以换成按房间分锁，但房间内
// 指令的全序必须保住。
type Controller struct {
	mu    sync.Mutex
	opts  Options
	rooms []*Room // 下标 1..MaxRooms，0 空着
	rec   Recorder

	// 发牌种子，测试里替换成固定值
	seedFn func() int64
}

var _ game.Module = (*Controller)(nil)

func NewController(opts Options, rec Recorder) *Controller {
	c := &Controller{
		opts:   opts,
		rooms:  make([]*Room, opts.MaxRooms+1),
		rec:    rec,
		seedFn: func() int64 { return time.Now().UnixNano() },
	}
	for i := 1; i <= opts.MaxRooms; i++ {
		c.rooms[i] = newRoom(i)
	}
	return c
}

func (c *Controller) Name() string { return "BIG2" }

func (c *Controller) MaxRooms() int { return c.opts.MaxRooms }

func (c *Controller) room(id int) *Room {
	if id < 1 || id >= len(c.rooms) {
		return nil
	}
	return c.rooms[id]
}

// PickRoom 返回第一个有空位的房间（按编号先到先得）。
func (c *Controller) PickRoom() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := 1; i < len(c.rooms); i++ {
		if len(c.rooms[i].seats) < c.opts.TableSize {
			return i
		}
	}
	return 1
}

// Enter 把玩家加入房间。返回 false 时没有任何状态变化，
// 调用方不能宣布玩家已进入。坐满自动开局。
func (c *Controller) Enter(p game.Player, out game.Sender, roomID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.room(roomID)
	if r == nil {
		out.Send("【BIG2】房间不存在")
		return false
	}
	if i, _ := r.seatOf(p.ID()); i >= 0 {
		out.Send(fmt.Sprintf("你已在 BIG2 房间 %d", roomID))
		return true
	}
	if len(r.seats) >= c.opts.TableSize {
		out.Send(fmt.Sprintf("【BIG2】房间 %d 已满（最多 %d 人）", roomID, c.opts.TableSize))
		return false
	}

	r.seats = append(r.seats, &seat{player: p, out: out})
	r.broadcast(fmt.Sprintf("【BIG2#%d】%s 进入房间 (%d/%d)", roomID, p.Name(), len(r.seats), c.opts.TableSize))
	out.Send("在房间内输入 HELP 可查看指令")

	if len(r.seats) == c.opts.TableSize && r.state == stateWaiting {
		c.startHand(r)
	}
	return true
}

// Leave 把玩家移出房间。对局中离座先退还本局进桌费，
// 人数掉到桌数以下时整局中止并退还其余人的进桌费。
// 对已经结算或已退费的玩家重复调用是幂等的。
func (c *Controller) Leave(playerID string, roomID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.room(roomID)
	if r == nil {
		return
	}
	idx, s := r.seatOf(playerID)
	if idx < 0 {
		return
	}

	name := s.player.Name()
	if r.paid[playerID] {
		s.player.Credit(c.opts.BuyIn)
		r.pot -= c.opts.BuyIn
		delete(r.paid, playerID)
		r.broadcast(fmt.Sprintf("【BIG2#%d】%s 离开房间，本局进桌费已退回，底池剩余：%d", roomID, name, r.pot))
	}

	r.removeSeat(idx)
	r.broadcast(fmt.Sprintf("【BIG2#%d】%s 离开房间", roomID, name))

	if len(r.seats) < c.opts.TableSize {
		c.abortHand(r)
	}
}

// abortHand 中止当前局：退还所有还在底池里的进桌费并重置。
// 房间本来就在等人时只是顺手清一遍空状态。
func (c *Controller) abortHand(r *Room) {
	if r.state == stateActive {
		for _, s := range r.seats {
			if r.paid[s.player.ID()] {
				s.player.Credit(c.opts.BuyIn)
				r.pot -= c.opts.BuyIn
				delete(r.paid, s.player.ID())
			}
		}
		r.broadcast(fmt.Sprintf("【BIG2#%d】人数不足，本局中止，进桌费已全数退回", r.id))
	}
	r.resetHand()
}

// collectBuyIn 开局前收进桌费。付不起的当场请出房间，
// 踢完人数不够就不开局。返回 true 表示每个座位都已付款入池。
func (c *Controller) collectBuyIn(r *Room) bool {
	r.pot = 0
	r.paid = make(map[string]bool)

	for i := 0; i < len(r.seats); {
		s := r.seats[i]
		if s.player.Balance() < c.opts.BuyIn {
			s.out.Send(fmt.Sprintf("【BIG2#%d】筹码不足，进桌费 %d，你目前 %d，已被请出房间",
				r.id, c.opts.BuyIn, s.player.Balance()))
			name := s.player.Name()
			r.removeSeat(i)
			r.broadcast(fmt.Sprintf("【BIG2#%d】%s 筹码不足，无法入局", r.id, name))
			continue
		}
		i++
	}

	if len(r.seats) < c.opts.TableSize {
		r.broadcast(fmt.Sprintf("【BIG2#%d】人数不足（需 %d 人），暂不开局", r.id, c.opts.TableSize))
		return false
	}

	for _, s := range r.seats {
		if !s.player.Debit(c.opts.BuyIn) {
			// 余额在检查后被动过（不应发生）。把已收的退掉，不开局。
			for _, t := range r.seats {
				if r.paid[t.player.ID()] {
					t.player.Credit(c.opts.BuyIn)
					delete(r.paid, t.player.ID())
				}
			}
			r.pot = 0
			r.broadcast(fmt.Sprintf("【BIG2#%d】收款失败，暂不开局", r.id))
			return false
		}
		r.pot += c.opts.BuyIn
		r.paid[s.player.ID()] = true
	}

	r.broadcast(fmt.Sprintf("【BIG2#%d】本局进桌费每人 %d，底池：%d（赢家通吃）", r.id, c.opts.BuyIn, r.pot))
	return true
}

// startHand 收钱、洗牌、发牌，并把首轮交给持 3C 的座位。
func (c *Controller) startHand(r *Room) {
	if !c.collectBuyIn(r) {
		return
	}

	d := deck.NewDealer(c.seedFn())
	d.NewDeck()
	hands := d.Deal(len(r.seats), 13)
	for i, s := range r.seats {
		s.hand = hands[i]
	}

	r.turn = r.openingSeat()
	r.state = stateActive
	r.last = nil
	r.passCount = 0
	r.firstMove = true

	r.broadcast(fmt.Sprintf("【BIG2#%d】游戏开始！", r.id))
	for _, s := range r.seats {
		s.out.Send("你的手牌：" + deck.Format(s.hand))
		s.out.Send(fmt.Sprintf("你的筹码：%d（底池：%d）", s.player.Balance(), r.pot))
	}

	first := r.seats[r.turn]
	r.broadcast(fmt.Sprintf("【BIG2#%d】第一手由持有 3C 的玩家 %s 先出（第一手必须包含 3C）", r.id, first.player.Name()))
	c.broadcastTurn(r)
}

func (c *Controller) broadcastTurn(r *Room) {
	if len(r.seats) == 0 {
		return
	}
	cur := r.seats[r.turn]
	r.broadcast(fmt.Sprintf("【BIG2#%d】轮到 %s：MOVE <cards...> 或 PASS / HAND（输入 HELP 看指令）", r.id, cur.player.Name()))

	if r.last != nil {
		r.broadcast(fmt.Sprintf("【BIG2#%d】上一手：%s 出 %s -> %s",
			r.id, r.last.name, r.last.combo.Tag, deck.Format(r.last.combo.Cards)))
	} else {
		r.broadcast(fmt.Sprintf("【BIG2#%d】目前无上一手（自由出牌）", r.id))
	}
}

// Handle 处理房间内的一行指令。所有校验失败只回给出错的
// 连接，状态不动，也不影响连接和对局。
func (c *Controller) Handle(p game.Player, out game.Sender, roomID int, line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.room(roomID)
	if r == nil {
		out.Send("【BIG2】房间不存在")
		return
	}
	_, s := r.seatOf(p.ID())
	if s == nil {
		out.Send(fmt.Sprintf("你不在 BIG2 房间 %d", roomID))
		return
	}

	op := strings.ToUpper(parts[0])

	switch op {
	case "HELP", "?":
		out.Send("【BIG2 指令】\n" +
			"MOVE <cards...>   例如：MOVE 3C TD AS\n" +
			"PASS              放弃此回合（需有上一手才可 PASS）\n" +
			"HAND              查看自己的手牌\n" +
			"CHIPS             查看自己的筹码\n" +
			"POT               查看本局底池\n" +
			"（回大厅用：LEAVE）\n" +
			"※本版本为简化规则：只允许相同牌型互压\n" +
			fmt.Sprintf("※每局进桌费 %d，赢家通吃底池\n", c.opts.BuyIn) +
			"※第一手必须包含梅花三（3C）")
		return

	case "HAND", "SHOW":
		out.Send("你的手牌：" + deck.Format(s.hand))
		return

	case "CHIPS":
		out.Send(fmt.Sprintf("你的筹码：%d", p.Balance()))
		return

	case "POT":
		out.Send(fmt.Sprintf("本局底池：%d（进桌费 %d/人）", r.pot, c.opts.BuyIn))
		return
	}

	if r.state != stateActive {
		out.Send(fmt.Sprintf("BIG2#%d 尚未开始（需 %d 人）", roomID, c.opts.TableSize))
		return
	}
	if r.seats[r.turn].player.ID() != p.ID() {
		out.Send("不是你的回合")
		return
	}

	switch op {
	case "PASS":
		c.handlePass(r, s)
	case "MOVE":
		c.handleMove(r, s, parts[1:])
	default:
		out.Send("未知指令：输入 HELP 查看")
	}
}

func (c *Controller) handlePass(r *Room, s *seat) {
	if r.last == nil {
		s.out.Send("目前无上一手，不能 PASS，请出牌")
		return
	}

	r.passCount++
	r.broadcast(fmt.Sprintf("【BIG2#%d】%s PASS", r.id, s.player.Name()))

	// 其余座位全都 PASS 过后恢复自由出牌
	if r.passCount >= len(r.seats)-1 {
		r.broadcast(fmt.Sprintf("【BIG2#%d】全员 PASS，重新自由出牌", r.id))
		r.last = nil
		r.passCount = 0
	}

	r.advanceTurn()
	c.broadcastTurn(r)
}

func (c *Controller) handleMove(r *Room, s *seat, tokens []string) {
	if len(tokens) == 0 {
		s.out.Send("用法：MOVE <cards...>")
		return
	}

	cards, err := deck.ParseAll(tokens)
	if err != nil {
		s.out.Send("牌格式错误，例如：3C TD AS")
		return
	}

	// 逐张核对持有（重复出同一张也会在这里被挡下）
	remaining := make([]deck.Card, len(s.hand))
	copy(remaining, s.hand)
	for _, card := range cards {
		found := -1
		for i, h := range remaining {
			if h == card {
				found = i
				break
			}
		}
		if found < 0 {
			s.out.Send(fmt.Sprintf("你手上没有 %s", card))
			return
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}

	if r.firstMove {
		has3C := false
		for _, card := range cards {
			if (card == deck.Card{Rank: 0, Suit: 0}) {
				has3C = true
				break
			}
		}
		if !has3C {
			s.out.Send("第一手必须包含梅花三（3C）")
			return
		}
	}

	combo := Classify(cards)
	if combo.Tag == Invalid {
		s.out.Send("不支持的牌型（仅：单/对/三/顺/葫芦/铁支）")
		return
	}

	var last *Combination
	if r.last != nil {
		last = &r.last.combo
	}
	if !combo.Beats(last) {
		s.out.Send("这手压不过上一手（不同牌型或大小不足）")
		return
	}

	s.hand = remaining
	r.last = &lastPlay{playerID: s.player.ID(), name: s.player.Name(), combo: combo}
	r.passCount = 0
	r.firstMove = false

	r.broadcast(fmt.Sprintf("【BIG2#%d】%s 出 %s：%s", r.id, s.player.Name(), combo.Tag, deck.Format(combo.Cards)))
	s.out.Send("你剩下的手牌：" + deck.Format(s.hand))

	if len(s.hand) == 0 {
		c.settle(r, s)
		return
	}

	r.advanceTurn()
	c.broadcastTurn(r)
}

// settle 把底池整锅给赢家，报告所有座位的结算筹码，然后
// 重置房间。人还坐满就直接开下一局。
func (c *Controller) settle(r *Room, winner *seat) {
	pot := r.pot
	r.broadcast(fmt.Sprintf("【BIG2#%d】%s 胜利！游戏结束（获得底池 %d）", r.id, winner.player.Name(), pot))

	winner.player.Credit(pot)
	r.pot = 0
	r.paid = make(map[string]bool)

	for _, s := range r.seats {
		r.broadcast(fmt.Sprintf("【结算】%s 筹码：%d", s.player.Name(), s.player.Balance()))
	}

	if c.rec != nil {
		id, name := winner.player.ID(), winner.player.Name()
		roomID := r.id
		go c.rec.RecordHand(roomID, id, name, pot)
	}

	r.resetHand()

	if len(r.seats) == c.opts.TableSize {
		c.startHand(r)
	}
}

// Snapshot 给管理接口一份各房间的只读视图。
func (c *Controller) Snapshot() []RoomInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]RoomInfo, 0, len(c.rooms)-1)
	for i := 1; i < len(c.rooms); i++ {
		r := c.rooms[i]
		names := make([]string, len(r.seats))
		for j, s := range r.seats {
			names[j] = s.player.Name()
		}
		out = append(out, RoomInfo{ID: r.id, State: r.state.String(), Players: names, Pot: r.pot})
	}
	return out
}
