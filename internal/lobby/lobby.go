package lobby

import (
	"fmt"
	"strconv"
	"strings"

	"CardCasino/internal/game"
	"CardCasino/internal/ledger"

	"github.com/google/uuid"
)

// Lobby 把连接分发到各游戏模块：HELLO 绑定昵称，
// PLAY 入房，房间内的指令行转交对应模块处理。
type Lobby struct {
	reg     *ledger.Registry
	modules map[string]game.Module
	order   []string // HELP 里按注册顺序列出
}

func New(reg *ledger.Registry, modules ...game.Module) *Lobby {
	l := &Lobby{
		reg:     reg,
		modules: make(map[string]game.Module, len(modules)),
	}
	for _, m := range modules {
		l.modules[m.Name()] = m
		l.order = append(l.order, m.Name())
	}
	return l
}

// Session 是一条连接在大厅里的状态。每个 session 只由它自己的
// 读循环驱动，不需要额外加锁。
type Session struct {
	ID     string
	out    game.Sender
	player *ledger.Player

	currentGame game.Module // nil 表示在大厅
	currentRoom int
}

func (s *Session) Player() *ledger.Player { return s.player }

// NewSession 在连接建立时调用，发欢迎语并建账本记录。
func (l *Lobby) NewSession(out game.Sender) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		out:    out,
		player: l.reg.NewPlayer(),
	}
	out.Send("欢迎连线到 CardCasino Server")
	out.Send("请先输入：HELLO <name>")
	return s
}

// Close 在断线时调用：先按隐式 LEAVE 退出当前游戏，再归还昵称。
func (l *Lobby) Close(s *Session) {
	l.leaveCurrentGame(s)
	l.reg.Release(s.player)
}

func (l *Lobby) leaveCurrentGame(s *Session) {
	if s.currentGame == nil {
		return
	}
	s.currentGame.Leave(s.player.ID(), s.currentRoom)
	s.currentGame = nil
	s.currentRoom = 0
}

// HandleLine 处理一行指令，返回 true 表示连接应当关闭（QUIT）。
func (l *Lobby) HandleLine(s *Session, raw string) bool {
	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToUpper(parts[0])

	if cmd == "HELLO" {
		l.handleHello(s, parts)
		return false
	}

	if s.player.Name() == "" {
		s.out.Send("请先 HELLO <name>")
		return false
	}

	switch cmd {
	case "HELP", "?":
		if s.currentGame == nil {
			l.sendLobbyHelp(s)
			return false
		}
		// 在游戏内：交给游戏模块回答

	case "WHERE", "ROOM":
		s.out.Send("目前位置：" + l.whereString(s))
		return false

	case "STATUS":
		s.out.Send(fmt.Sprintf("name=%s balance=%d room=%s", s.player.Name(), s.player.Balance(), l.whereString(s)))
		return false

	case "PLAY":
		l.handlePlay(s, parts)
		return false

	case "LEAVE":
		l.leaveCurrentGame(s)
		s.out.Send("已回到大厅")
		return false

	case "QUIT":
		s.out.Send("Bye!")
		return true
	}

	if s.currentGame == nil {
		s.out.Send("请先 PLAY 进入游戏")
		return false
	}
	s.currentGame.Handle(s.player, s.out, s.currentRoom, raw)
	return false
}

func (l *Lobby) handleHello(s *Session, parts []string) {
	if len(parts) != 2 {
		s.out.Send("用法：HELLO <name>")
		return
	}
	name := strings.TrimSpace(parts[1])
	if name == "" {
		s.out.Send("名字不能空白")
		return
	}
	if err := l.reg.ClaimName(s.player, name); err != nil {
		s.out.Send("名字已被使用：" + name)
		return
	}
	s.out.Send(fmt.Sprintf("欢迎 %s！", name))
	s.out.Send("输入 HELP 查看指令")
}

func (l *Lobby) handlePlay(s *Session, parts []string) {
	if len(parts) < 2 {
		s.out.Send("用法：PLAY <" + strings.Join(l.order, "|") + "> [ROOM_ID]")
		return
	}

	name := strings.ToUpper(parts[1])
	mod, ok := l.modules[name]
	if !ok {
		s.out.Send("未知游戏")
		return
	}

	l.leaveCurrentGame(s)

	roomID := mod.PickRoom()
	if len(parts) >= 3 {
		if id, err := strconv.Atoi(parts[2]); err == nil {
			roomID = id
		}
	}
	if roomID < 1 || roomID > mod.MaxRooms() {
		s.out.Send(fmt.Sprintf("【%s】房号范围只能 1~%d", name, mod.MaxRooms()))
		return
	}

	// Enter 返回 false 时不能显示「已进入」
	if !mod.Enter(s.player, s.out, roomID) {
		return
	}
	s.currentGame = mod
	s.currentRoom = roomID
	s.out.Send(fmt.Sprintf("已进入 %s 房间 #%d", name, roomID))
	s.out.Send("提示：在房间内输入 HELP 可查看游戏指令")
}

func (l *Lobby) whereString(s *Session) string {
	if s.currentGame == nil {
		return "LOBBY"
	}
	return fmt.Sprintf("%s #%d", s.currentGame.Name(), s.currentRoom)
}

func (l *Lobby) sendLobbyHelp(s *Session) {
	s.out.Send("==================== 大厅指令 ====================\n" +
		"HELLO <name>                     设定昵称\n" +
		"PLAY <GAME> [ROOM_ID]            进入游戏房间\n" +
		"LEAVE                            回到大厅\n" +
		"WHERE                            显示目前位置\n" +
		"STATUS                           显示个人状态\n" +
		"QUIT                             离线\n" +
		"\n" +
		"GAME 代号：" + strings.Join(l.order, " / ") + "\n" +
		"==================================================")
}
