package server

import (
	"bufio"
	"net"
	"strings"

	"CardCasino/internal/lobby"
	"CardCasino/internal/utils"
)

// Server 是 TCP 文本协议入口：accept 循环 + 每条连接一个 goroutine。
// 行封装由 bufio.Scanner 处理，游戏层永远只看到完整的一行。
type Server struct {
	addr string
	lb   *lobby.Lobby
}

func New(addr string, lb *lobby.Lobby) *Server {
	return &Server{addr: addr, lb: lb}
}

func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve 在已有的 listener 上跑 accept 循环。
func (s *Server) Serve(ln net.Listener) error {
	defer ln.Close()
	utils.Print.Info("TCP server listening", "addr", ln.Addr().String())

	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	remote := conn.RemoteAddr().String()
	utils.Print.Info("client connected", "remote", remote)

	out := NewConn(conn)
	sess := s.lb.NewSession(out)

	defer func() {
		s.lb.Close(sess)
		out.Close()
		utils.Print.Info("client disconnected", "remote", remote)
	}()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := s.lb.HandleLine(sess, line); quit {
			return
		}
	}
}
