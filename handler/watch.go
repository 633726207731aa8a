package handler

import (
	stdcontext "context"
	"net/http"

	"Collabenote/models"
	"Collabenote/pkg/context"
	"Collabenote/pkg/log"
	"Collabenote/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Watch 个人中心实时刷新：升级成 WebSocket 后订阅用户文档，
// 每次变更把全量文档推给客户端（与端上 onSnapshot 行为对齐）。
func (h *User) Watch(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	defer conn.Close()

	ctx, cancel := stdcontext.WithCancel(c.Request.Context())
	defer cancel()

	// 读协程只为感知客户端断开
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err = h.UserService.Watch(ctx, userID, func(user *models.User) error {
		return conn.WriteJSON(user)
	})
	if err != nil && ctx.Err() == nil {
		log.L.Warn("user watch closed", zap.String("uid", userID), zap.Error(err))
	}
	return nil
}
