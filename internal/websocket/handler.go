package websocket

import (
	"net/http"
	"strings"
	"time"

	"CardCasino/internal/lobby"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS 把 WebSocket 连接接进大厅。每帧一条协议行，
// 语义与 TCP 端完全一致。
func ServeWS(lb *lobby.Lobby) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		client := newClient(conn)
		go client.writePump()

		sess := lb.NewSession(client)
		defer func() {
			lb.Close(sess)
			client.close()
		}()

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			line := strings.TrimSpace(string(data))
			if line == "" {
				continue
			}
			if quit := lb.HandleLine(sess, line); quit {
				return
			}
		}
	}
}
