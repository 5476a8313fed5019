package main

import (
	"CardCasino/config"
	"CardCasino/internal/admin"
	"CardCasino/internal/auth"
	"CardCasino/internal/game/big2"
	"CardCasino/internal/ledger"
	"CardCasino/internal/lobby"
	"CardCasino/internal/middleware"
	"CardCasino/internal/server"
	"CardCasino/internal/stats"
	"CardCasino/internal/storage"
	"CardCasino/internal/utils"
	"CardCasino/internal/websocket"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// handRecorder 把结算事件同时送进统计与归档。
type handRecorder struct {
	stats   *stats.Service
	archive *storage.HandArchive
}

func (h *handRecorder) RecordHand(roomID int, winnerID, winnerName string, pot int64) {
	h.stats.RecordHand(roomID, winnerID, winnerName, pot)
	if h.archive != nil {
		h.archive.Record(roomID, winnerName, pot)
	}
}

func main() {
	config.Load()
	utils.Init()

	//-------------------------------------------------------
	// 1. 统计存储：默认内存，配了 Redis 就换 Redis
	//-------------------------------------------------------
	var statsRepo stats.Repo = stats.NewMemoryRepo()
	if config.C.Redis.Enabled {
		if err := storage.InitRedis(
			config.C.Redis.Addr,
			config.C.Redis.Password,
			config.C.Redis.DB,
		); err != nil {
			utils.Print.Fatal("Redis init failed", "err", err)
		}
		statsRepo = stats.NewRedisRepo(storage.Rdb)
	}
	statsSvc := stats.NewService(statsRepo)

	//-------------------------------------------------------
	// 2. 可选的 Postgres 对局归档
	//-------------------------------------------------------
	var archive *storage.HandArchive
	if dsn := config.C.Database.DSN; dsn != "" {
		if err := storage.InitPostgres(dsn); err != nil {
			utils.Print.Fatal("Postgres init failed", "err", err)
		}
		var err error
		archive, err = storage.NewHandArchive(storage.DB)
		if err != nil {
			utils.Print.Fatal("hand archive init failed", "err", err)
		}
	}

	//-------------------------------------------------------
	// 3. 账本 + BIG2 控制器 + 大厅
	//-------------------------------------------------------
	reg := ledger.NewRegistry(config.C.Game.StartingChips)

	ctrl := big2.NewController(big2.Options{
		BuyIn:     config.C.Game.BuyIn,
		TableSize: config.C.Game.TableSize,
		MaxRooms:  config.C.Game.MaxRooms,
	}, &handRecorder{stats: statsSvc, archive: archive})

	lb := lobby.New(reg, ctrl)

	//-------------------------------------------------------
	// 4. HTTP：health / 登录 / 管理接口 / WebSocket 入口
	//-------------------------------------------------------
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	loginHandler := auth.NewHandler()
	r.POST("/auth/login", loginHandler.Login)

	r.GET("/ws", websocket.ServeWS(lb))

	secret := []byte(config.C.JWT.Secret)
	adminHandler := admin.NewHandler(ctrl, statsSvc, archive)
	authed := r.Group("/admin", middleware.JwtAuthMiddleware(secret))
	{
		authed.GET("/rooms", adminHandler.Rooms)
		authed.GET("/stats", adminHandler.Stats)
		authed.GET("/hands", adminHandler.Hands)
	}

	go func() {
		utils.Print.Info("HTTP server running", "addr", config.C.Server.HTTPAddr)
		if err := r.Run(config.C.Server.HTTPAddr); err != nil {
			utils.Print.Fatal("HTTP server stopped", "err", err)
		}
	}()

	//-------------------------------------------------------
	// 5. TCP 文本协议入口
	//-------------------------------------------------------
	srv := server.New(config.C.Server.TCPAddr, lb)
	if err := srv.ListenAndServe(); err != nil {
		utils.Print.Fatal("TCP server stopped", "err", err)
	}
}
