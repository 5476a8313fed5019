package server

import (
	"net"
	"strings"
	"sync"
	"time"
)

// 单次写超时：慢客户端不能拖住整桌
const writeWait = 10 * time.Second

// Conn 把 net.Conn 包成 game.Sender：每行补换行、写入加锁、
// 对断掉的连接静默失败，错误不往游戏层传。
type Conn struct {
	mu     sync.Mutex
	conn   net.Conn
	closed bool
}

func NewConn(c net.Conn) *Conn {
	return &Conn{conn: c}
}

func (c *Conn) Send(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_, _ = c.conn.Write([]byte(line))
}

func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	_ = c.conn.Close()
}
