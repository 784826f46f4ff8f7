package websocket

import (
	"encoding/json"
	"sync"
	"time"
)

// DocumentEvent 文档变更事件
// 通过 WebSocket 和 SSE 推送给订阅方
type DocumentEvent struct {
	Type       string    `json:"type"` // created/updated/deleted/rendered
	DocumentID string    `json:"documentId"`
	Version    int       `json:"version,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Hub 管理所有 WebSocket 连接
type Hub struct {
	// 已注册的客户端
	clients map[*Client]bool

	// 通道订阅者（SSE 等非 WebSocket 消费方）
	subscribers map[chan []byte]bool

	// 广播消息到所有客户端
	Broadcast chan []byte

	// 注册新客户端
	Register chan *Client

	// 注销客户端
	Unregister chan *Client

	// 互斥锁，保护 clients 和 subscribers
	mu sync.RWMutex
}

// NewHub 创建新的 Hub
func NewHub() *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		subscribers: make(map[chan []byte]bool),
		Broadcast:   make(chan []byte),
		Register:    make(chan *Client),
		Unregister:  make(chan *Client),
	}
}

// Run 运行 Hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case message := <-h.Broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			for sub := range h.subscribers {
				select {
				case sub <- message:
				default:
					// 订阅者未及时消费,丢弃该条消息
				}
			}
			h.mu.Unlock()
		}
	}
}

// PublishDocumentEvent 序列化并广播文档事件
func (h *Hub) PublishDocumentEvent(eventType, documentID string, version int) {
	event := DocumentEvent{
		Type:       eventType,
		DocumentID: documentID,
		Version:    version,
		Timestamp:  time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.Broadcast <- payload
}

// Subscribe 注册通道订阅者,返回接收广播消息的 channel
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, 256)
	h.mu.Lock()
	h.subscribers[ch] = true
	h.mu.Unlock()
	return ch
}

// Unsubscribe 注销通道订阅者
func (h *Hub) Unsubscribe(ch chan []byte) {
	h.mu.Lock()
	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// HasClient 检查客户端是否存在
func (h *Hub) HasClient(clientID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if client.ID == clientID {
			return true
		}
	}
	return false
}

// GetClientCount 获取客户端数量
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
