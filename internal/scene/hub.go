package scene

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Room is one live session: at most one publisher and any number of
// viewers. The latest frame is retained so late joiners get state.
type Room struct {
	sessionID  string
	publisher  *Client
	viewers    map[string]*Client // clientID -> client
	lastFrame  []byte             // marshalled scene.frame or pixels.frame
	frameCount int64
}

func NewRoom(sessionID string) *Room {
	return &Room{
		sessionID: sessionID,
		viewers:   make(map[string]*Client),
	}
}

type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room // sessionID -> room
	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

// HasFrame reports whether the session already holds a retained frame.
func (h *Hub) HasFrame(sessionID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room, ok := h.rooms[sessionID]
	return ok && room.lastFrame != nil
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.SessionID]
	if !ok {
		room = NewRoom(client.SessionID)
		h.rooms[client.SessionID] = room
	}

	var lastFrame []byte
	var publisher *Client
	if client.Role == RolePublisher {
		if room.publisher != nil {
			room.publisher.closeSend()
			slog.Warn("publisher replaced", "session", client.SessionID)
		}
		room.publisher = client
	} else {
		room.viewers[client.ClientID] = client
		lastFrame = room.lastFrame
		publisher = room.publisher
	}
	hasFrame := room.lastFrame != nil
	h.mu.Unlock()

	welcomePayload, _ := json.Marshal(WelcomePayload{
		ClientID:  client.ClientID,
		SessionID: client.SessionID,
		Role:      string(client.Role),
		HasFrame:  hasFrame,
	})
	client.Send(&Message{
		Type:      TypeWelcome,
		SessionID: client.SessionID,
		ClientID:  client.ClientID,
		Payload:   welcomePayload,
	})

	// Late-joining viewers get the retained frame immediately.
	if lastFrame != nil {
		client.SendRaw(lastFrame)
	}

	if publisher != nil {
		joinPayload, _ := json.Marshal(ViewerPayload{ClientID: client.ClientID})
		publisher.Send(&Message{
			Type:      TypeViewerJoin,
			SessionID: client.SessionID,
			Payload:   joinPayload,
		})
	}

	slog.Info("client joined", "client", client.ClientID, "session", client.SessionID, "role", client.Role)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.SessionID]
	if !ok {
		h.mu.Unlock()
		client.closeSend()
		return
	}

	var publisher *Client
	if client.Role == RolePublisher {
		if room.publisher == client {
			room.publisher = nil
		}
	} else if _, ok := room.viewers[client.ClientID]; ok {
		delete(room.viewers, client.ClientID)
		publisher = room.publisher
	}
	client.closeSend()

	if room.publisher == nil && len(room.viewers) == 0 {
		delete(h.rooms, client.SessionID)
	}
	h.mu.Unlock()

	if publisher != nil {
		leavePayload, _ := json.Marshal(ViewerPayload{ClientID: client.ClientID})
		publisher.Send(&Message{
			Type:      TypeViewerLeave,
			SessionID: client.SessionID,
			Payload:   leavePayload,
		})
	}

	slog.Info("client left", "client", client.ClientID, "session", client.SessionID, "role", client.Role)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	switch msg.Type {
	case TypeSceneFrame, TypePixelsFrame:
		h.handleFrame(sender, msg)
	case TypeSceneRequest:
		h.handleSceneRequest(sender)
	case TypeInputEvent:
		h.handleInputEvent(sender, msg)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", sender.ClientID)
		sender.SendError("unknown_type", "unknown message type "+msg.Type)
	}
}

// handleFrame validates the frame, retains it for late joiners and fans
// it out to all viewers.
func (h *Hub) handleFrame(sender *Client, msg *Message) {
	if sender.Role != RolePublisher {
		sender.SendError("not_publisher", "only the publisher may send frames")
		return
	}

	if msg.Type == TypeSceneFrame {
		var frame SceneFramePayload
		if err := json.Unmarshal(msg.Payload, &frame); err != nil {
			slog.Warn("invalid scene frame", "error", err, "client", sender.ClientID)
			sender.SendError("bad_frame", "invalid scene frame payload")
			return
		}
	} else {
		var frame PixelsFramePayload
		if err := json.Unmarshal(msg.Payload, &frame); err != nil {
			slog.Warn("invalid pixels frame", "error", err, "client", sender.ClientID)
			sender.SendError("bad_frame", "invalid pixels frame payload")
			return
		}
	}

	h.mu.Lock()
	room, ok := h.rooms[sender.SessionID]
	if !ok {
		h.mu.Unlock()
		return
	}
	if room.publisher != sender {
		h.mu.Unlock()
		sender.SendError("not_publisher", "no longer the session publisher")
		return
	}
	room.frameCount++
	msg.Seq = room.frameCount
	data, err := json.Marshal(msg)
	if err != nil {
		h.mu.Unlock()
		slog.Error("marshal frame", "error", err)
		return
	}
	room.lastFrame = data
	viewers := make([]*Client, 0, len(room.viewers))
	for _, v := range room.viewers {
		viewers = append(viewers, v)
	}
	h.mu.Unlock()

	for _, v := range viewers {
		v.SendRaw(data)
	}
}

// handleSceneRequest re-sends the retained frame to the requesting
// viewer.
func (h *Hub) handleSceneRequest(sender *Client) {
	h.mu.RLock()
	room, ok := h.rooms[sender.SessionID]
	var lastFrame []byte
	if ok {
		lastFrame = room.lastFrame
	}
	h.mu.RUnlock()

	if lastFrame == nil {
		sender.SendError("no_frame", "no frame published yet")
		return
	}
	sender.SendRaw(lastFrame)
}

// handleInputEvent routes a viewer event to the session's publisher.
func (h *Hub) handleInputEvent(sender *Client, msg *Message) {
	if sender.Role == RolePublisher {
		sender.SendError("not_viewer", "publishers do not send input events")
		return
	}

	var payload InputEventPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		slog.Warn("invalid input event", "error", err, "client", sender.ClientID)
		sender.SendError("bad_event", "invalid input event payload")
		return
	}

	h.mu.RLock()
	room, ok := h.rooms[sender.SessionID]
	var publisher *Client
	if ok {
		publisher = room.publisher
	}
	h.mu.RUnlock()

	if publisher == nil {
		sender.SendError("no_publisher", "session has no publisher")
		return
	}

	publisher.Send(&Message{
		Type:      TypeInputEvent,
		SessionID: sender.SessionID,
		ClientID:  sender.ClientID,
		Payload:   msg.Payload,
	})
}
