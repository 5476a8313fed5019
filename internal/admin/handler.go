package admin

import (
	"net/http"

	"CardCasino/internal/game/big2"
	"CardCasino/internal/stats"
	"CardCasino/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler 暴露运营用的只读接口：房间快照、聚合统计、对局归档。
type Handler struct {
	ctrl    *big2.Controller
	stats   *stats.Service
	archive *storage.HandArchive // 可为 nil（未配 DSN）
}

func NewHandler(ctrl *big2.Controller, svc *stats.Service, archive *storage.HandArchive) *Handler {
	return &Handler{ctrl: ctrl, stats: svc, archive: archive}
}

// GET /admin/rooms
func (h *Handler) Rooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": h.ctrl.Snapshot()})
}

// GET /admin/stats
func (h *Handler) Stats(c *gin.Context) {
	summary, err := h.stats.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /admin/hands
func (h *Handler) Hands(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "hand archive not configured"})
		return
	}
	records, err := h.archive.Recent(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hands": records})
}
