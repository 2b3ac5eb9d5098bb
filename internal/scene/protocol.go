// Package scene carries rendered environment state between one publisher
// and any number of viewers over websockets. Frames fan out to viewers;
// input events route back to the publisher. Nothing is persisted beyond
// the latest frame of each session.
package scene

import (
	"encoding/json"

	"github.com/gymnarium/visualisers-base/internal/geometry"
	"github.com/gymnarium/visualisers-base/internal/input"
	"github.com/gymnarium/visualisers-base/internal/pixel"
	"github.com/gymnarium/visualisers-base/internal/style"
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Connection
	TypeWelcome = "welcome"
	TypeError   = "error"

	// Frames, publisher to viewers
	TypeSceneFrame  = "scene.frame"
	TypePixelsFrame = "pixels.frame"

	// Viewer to publisher
	TypeSceneRequest = "scene.request"
	TypeInputEvent   = "input.event"

	// Membership notifications to the publisher
	TypeViewerJoin  = "viewer.join"
	TypeViewerLeave = "viewer.leave"
)

// WelcomePayload is sent once after a client connects.
type WelcomePayload struct {
	ClientID  string `json:"clientId"`
	SessionID string `json:"sessionId"`
	Role      string `json:"role"`
	HasFrame  bool   `json:"hasFrame"`
}

// SceneFramePayload is one rendered state of an environment as geometry,
// the wire form of TwoDimensionalDrawableEnvironment output.
type SceneFramePayload struct {
	FrameID         string                          `json:"frameId"`
	Geometries      geometry.List                   `json:"geometries"`
	View            *geometry.Viewport2D            `json:"view,omitempty"`
	ViewMode        geometry.Viewport2DModification `json:"viewMode,omitempty"`
	BackgroundColor *style.Color                    `json:"backgroundColor,omitempty"`
	StepsPerSecond  *float64                        `json:"stepsPerSecond,omitempty"`
}

// PixelsFramePayload is one rendered state as a raw pixel array, the
// wire form of PixelArrayDrawableEnvironment output.
type PixelsFramePayload struct {
	FrameID        string      `json:"frameId"`
	Pixels         pixel.Array `json:"pixels"`
	StepsPerSecond *float64    `json:"stepsPerSecond,omitempty"`
}

// InputEventPayload carries a viewer input event back to the publisher.
type InputEventPayload struct {
	Event input.Event `json:"event"`
}

// ViewerPayload notifies the publisher about viewer membership changes.
type ViewerPayload struct {
	ClientID string `json:"clientId"`
}

// ErrorPayload reports a protocol violation to the offending client.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
