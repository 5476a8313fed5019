package auth

import (
	"crypto/subtle"
	"time"

	"CardCasino/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Key string `json:"key" binding:"required"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Login 用配置里的管理密钥换一枚 24 小时的 JWT，
// 供 /admin 与 /ws 等受保护路由使用。
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "bad request"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Key), []byte(config.C.Admin.Key)) != 1 {
		c.JSON(401, gin.H{"error": "invalid key"})
		return
	}

	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtStr, err := token.SignedString([]byte(config.C.JWT.Secret))
	if err != nil {
		c.JSON(500, gin.H{"error": "jwt generation failed"})
		return
	}

	c.JSON(200, gin.H{"jwt": jwtStr})
}
