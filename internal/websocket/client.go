package websocket

import (
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second    // 单次写超时
	pongWait   = 60 * time.Second    // 读超时
	pingPeriod = (pongWait * 9) / 10 // 心跳发送周期
)

// Client 是一条 WebSocket 连接。文本帧一帧一行，
// 和 TCP 端走完全相同的大厅/游戏路径。
type Client struct {
	conn *websocket.Conn
	send chan string
	done chan struct{}
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan string, 32),
		done: make(chan struct{}),
	}
}

// Send 实现 game.Sender。发送队列满或连接已关时直接丢弃：
// 尽力而为，绝不阻塞游戏逻辑。
func (c *Client) Send(line string) {
	line = strings.TrimSuffix(line, "\n")
	select {
	case <-c.done:
	case c.send <- line:
	default:
	}
}

func (c *Client) close() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

// 写协程：排队消息 + 定时 ping 维持连接健康。
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
