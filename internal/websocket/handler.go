package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorillaWS "github.com/gorilla/websocket"
)

var upgrader = gorillaWS.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 在生产环境中应该检查 Origin
		return true
	},
}

// WebSocketHandler WebSocket 处理器
// 客户端连接后接收文档变更事件广播
func WebSocketHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 升级连接
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
			return
		}

		// 2. 创建客户端
		// user 参数可选,用于标识连接来源
		client := NewClient(
			uuid.New().String(),
			c.Query("user"),
			hub,
			conn,
		)

		// 3. 注册客户端
		hub.Register <- client

		// 4. 启动 readPump 和 writePump
		go client.ReadPump()
		go client.WritePump()
	}
}
