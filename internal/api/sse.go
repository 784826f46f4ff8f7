package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mautops/compose-gin/internal/websocket"
)

// SSEHandler SSE 处理器
// 支持文档变更事件实时推送
func SSEHandler(hub *websocket.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 可选按文档 ID 过滤
		documentID := c.Query("document")

		// 2. 设置 SSE 响应头
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no") // 禁用 Nginx 缓冲

		// 3. 获取 Flusher（用于刷新响应缓冲区）
		flusher, ok := c.Writer.(http.Flusher)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
			c.Abort()
			return
		}

		// 4. 订阅文档事件
		events := hub.Subscribe()
		defer hub.Unsubscribe(events)

		// 5. 发送初始连接消息
		initialMsg := map[string]interface{}{
			"type": "connected",
			"time": time.Now().Unix(),
		}
		initialData, _ := json.Marshal(initialMsg)
		if err := sendSSEMessage(c.Writer, initialData); err != nil {
			return
		}
		flusher.Flush()

		// 6. 心跳保持连接
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		// 7. 持续发送消息
		for {
			select {
			case <-c.Request.Context().Done():
				return
			case <-ticker.C:
				heartbeat := map[string]interface{}{
					"type": "heartbeat",
					"time": time.Now().Unix(),
				}
				data, _ := json.Marshal(heartbeat)
				if err := sendSSEMessage(c.Writer, data); err != nil {
					return
				}
				flusher.Flush()
			case message, ok := <-events:
				if !ok {
					return
				}
				if documentID != "" {
					var event websocket.DocumentEvent
					if err := json.Unmarshal(message, &event); err == nil && event.DocumentID != documentID {
						continue
					}
				}
				if err := sendSSEMessage(c.Writer, message); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

// sendSSEMessage 发送 SSE 消息
func sendSSEMessage(w io.Writer, data []byte) error {
	// SSE 格式: data: <json>\n\n
	_, err := fmt.Fprintf(w, "data: %s\n\n", string(data))
	return err
}
