package game

// Sender 把一行文字送回某个连接。发送是尽力而为的：
// 连接断开时实现方必须自行吞掉错误，绝不能把失败传回游戏逻辑。
type Sender interface {
	Send(line string)
}

// Player 是游戏模块能看到的玩家能力：身份 + 读/扣/加筹码。
// 完整的玩家对象归 ledger 所有，游戏层只拿这个窄接口。
type Player interface {
	ID() string
	Name() string
	Balance() int64
	// Debit 扣除 amount，余额不足时返回 false 且不改动余额。
	Debit(amount int64) bool
	Credit(amount int64)
}

// Module 是大厅与单个游戏类型之间的契约。
// 大厅负责解析 PLAY/LEAVE 并把房间内的指令行转交给模块。
type Module interface {
	Name() string
	MaxRooms() int
	// PickRoom 返回第一个还有空位的房间号。
	PickRoom() int
	// Enter 返回 false 时不得有任何状态变化，调用方也不能宣布玩家已进入。
	Enter(p Player, out Sender, roomID int) bool
	Leave(playerID string, roomID int)
	// Handle 处理房间内的一行指令（MOVE/PASS/HAND/...）。
	Handle(p Player, out Sender, roomID int, line string)
}
