// Package input models the device events a visualiser can receive from a
// viewer and the buffers that carry them between session participants.
package input

import "math"

// Kind discriminates the event union.
type Kind string

const (
	KindButton   Kind = "button"
	KindMove     Kind = "move"
	KindText     Kind = "text"
	KindResize   Kind = "resize"
	KindFocus    Kind = "focus"
	KindCursor   Kind = "cursor"
	KindFileDrag Kind = "fileDrag"
	KindClose    Kind = "close"
)

// Event is a single input event. Kind selects which payload field is set;
// the rest stay nil and are omitted on the wire.
type Event struct {
	Kind Kind `json:"kind"`

	Button   *ButtonArgs   `json:"button,omitempty"`
	Motion   *Motion       `json:"motion,omitempty"`
	Text     string        `json:"text,omitempty"`
	Resize   *ResizeArgs   `json:"resize,omitempty"`
	Gained   *bool         `json:"gained,omitempty"`
	FileDrag *FileDragArgs `json:"fileDrag,omitempty"`
}

func NewButtonEvent(args ButtonArgs) Event {
	return Event{Kind: KindButton, Button: &args}
}

func NewMoveEvent(motion Motion) Event {
	return Event{Kind: KindMove, Motion: &motion}
}

func NewTextEvent(text string) Event {
	return Event{Kind: KindText, Text: text}
}

func NewResizeEvent(args ResizeArgs) Event {
	return Event{Kind: KindResize, Resize: &args}
}

// NewFocusEvent reports the window gaining or losing keyboard focus.
func NewFocusEvent(gained bool) Event {
	return Event{Kind: KindFocus, Gained: &gained}
}

// NewCursorEvent reports the cursor entering or leaving the window.
func NewCursorEvent(gained bool) Event {
	return Event{Kind: KindCursor, Gained: &gained}
}

func NewFileDragEvent(args FileDragArgs) Event {
	return Event{Kind: KindFileDrag, FileDrag: &args}
}

func NewCloseEvent() Event {
	return Event{Kind: KindClose}
}

// ButtonState reports whether a button was pressed or released.
type ButtonState string

const (
	Press   ButtonState = "press"
	Release ButtonState = "release"
)

// ButtonArgs carries a button state change. Scancode is the physical
// keyboard position when known, nil for non-keyboard devices.
type ButtonArgs struct {
	State    ButtonState `json:"state"`
	Button   Button      `json:"button"`
	Scancode *int32      `json:"scancode,omitempty"`
}

// ButtonKind discriminates the button union.
type ButtonKind string

const (
	ButtonKeyboard   ButtonKind = "keyboard"
	ButtonMouse      ButtonKind = "mouse"
	ButtonController ButtonKind = "controller"
	ButtonHat        ButtonKind = "hat"
)

// Button identifies a button on some device.
type Button struct {
	Kind ButtonKind `json:"kind"`

	Key        Key               `json:"key,omitempty"`
	Mouse      MouseButton       `json:"mouse,omitempty"`
	Controller *ControllerButton `json:"controller,omitempty"`
	Hat        *ControllerHat    `json:"hat,omitempty"`
}

func KeyboardButton(key Key) Button {
	return Button{Kind: ButtonKeyboard, Key: key}
}

func MouseButtonOf(button MouseButton) Button {
	return Button{Kind: ButtonMouse, Mouse: button}
}

func ControllerButtonOf(id uint32, button uint8) Button {
	return Button{Kind: ButtonController, Controller: &ControllerButton{ID: id, Button: button}}
}

func HatButton(id uint32, which uint8, state HatState) Button {
	return Button{Kind: ButtonHat, Hat: &ControllerHat{ID: id, Which: which, State: state}}
}

// MouseButton identifies a mouse button.
type MouseButton string

const (
	MouseUnknown MouseButton = "unknown"
	MouseLeft    MouseButton = "left"
	MouseRight   MouseButton = "right"
	MouseMiddle  MouseButton = "middle"
	MouseX1      MouseButton = "x1"
	MouseX2      MouseButton = "x2"
	MouseButton6 MouseButton = "button6"
	MouseButton7 MouseButton = "button7"
	MouseButton8 MouseButton = "button8"
)

// ControllerButton identifies a button on a specific controller. The
// numbering is backend dependent.
type ControllerButton struct {
	ID     uint32 `json:"id"`
	Button uint8  `json:"button"`
}

// ControllerHat identifies a d-pad position change on a controller.
type ControllerHat struct {
	ID    uint32   `json:"id"`
	Which uint8    `json:"which"`
	State HatState `json:"state"`
}

// HatState is a d-pad direction.
type HatState string

const (
	HatCentered  HatState = "centered"
	HatUp        HatState = "up"
	HatRight     HatState = "right"
	HatDown      HatState = "down"
	HatLeft      HatState = "left"
	HatRightUp   HatState = "rightUp"
	HatRightDown HatState = "rightDown"
	HatLeftUp    HatState = "leftUp"
	HatLeftDown  HatState = "leftDown"
)

// MotionKind discriminates the motion union.
type MotionKind string

const (
	MotionMouseCursor    MotionKind = "mouseCursor"
	MotionMouseRelative  MotionKind = "mouseRelative"
	MotionMouseScroll    MotionKind = "mouseScroll"
	MotionControllerAxis MotionKind = "controllerAxis"
	MotionTouch          MotionKind = "touch"
)

// Motion is a movement event. Mouse kinds use X and Y; the controller and
// touch kinds carry their own payloads.
type Motion struct {
	Kind MotionKind `json:"kind"`

	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	ControllerAxis *ControllerAxisArgs `json:"controllerAxis,omitempty"`
	Touch          *TouchArgs          `json:"touch,omitempty"`
}

func MouseCursorMotion(x, y float64) Motion {
	return Motion{Kind: MotionMouseCursor, X: x, Y: y}
}

func MouseRelativeMotion(x, y float64) Motion {
	return Motion{Kind: MotionMouseRelative, X: x, Y: y}
}

func MouseScrollMotion(x, y float64) Motion {
	return Motion{Kind: MotionMouseScroll, X: x, Y: y}
}

func ControllerAxisMotion(args ControllerAxisArgs) Motion {
	return Motion{Kind: MotionControllerAxis, ControllerAxis: &args}
}

func TouchMotion(args TouchArgs) Motion {
	return Motion{Kind: MotionTouch, Touch: &args}
}

// ControllerAxisArgs carries an axis move. Position is usually in
// [-1, 1], though backends may use other ranges.
type ControllerAxisArgs struct {
	ID       uint32  `json:"id"`
	Axis     uint8   `json:"axis"`
	Position float64 `json:"position"`
}

// TouchPhase is the state of a touch.
type TouchPhase string

const (
	TouchStart  TouchPhase = "start"
	TouchMove   TouchPhase = "move"
	TouchEnd    TouchPhase = "end"
	TouchCancel TouchPhase = "cancel"
)

// TouchArgs carries a touch event. Positions are normalized to 0..1 and
// the pressure vector has maximum length 1. 2D touches store their
// pressure along the z axis.
type TouchArgs struct {
	Device     int64      `json:"device"`
	ID         int64      `json:"id"`
	Position3D [3]float64 `json:"position3d"`
	Pressure3D [3]float64 `json:"pressure3d"`
	Is3D       bool       `json:"is3d"`
	Phase      TouchPhase `json:"phase"`
}

// NewTouchArgs creates arguments for a 2D touch.
func NewTouchArgs(device, id int64, x, y, pressure float64, phase TouchPhase) TouchArgs {
	return TouchArgs{
		Device:     device,
		ID:         id,
		Position3D: [3]float64{x, y, 0},
		Pressure3D: [3]float64{0, 0, pressure},
		Phase:      phase,
	}
}

// NewTouchArgs3D creates arguments for a 3D touch.
func NewTouchArgs3D(device, id int64, position, pressure [3]float64, phase TouchPhase) TouchArgs {
	return TouchArgs{
		Device:     device,
		ID:         id,
		Position3D: position,
		Pressure3D: pressure,
		Is3D:       true,
		Phase:      phase,
	}
}

// Position returns the 2D touch position.
func (t TouchArgs) Position() (x, y float64) {
	return t.Position3D[0], t.Position3D[1]
}

// Pressure returns the pressure magnitude, normalized 0..1.
func (t TouchArgs) Pressure() float64 {
	px, py, pz := t.Pressure3D[0], t.Pressure3D[1], t.Pressure3D[2]
	return math.Sqrt(px*px + py*py + pz*pz)
}

// ResizeArgs reports a window resize. WindowSize is in points, DrawSize
// in pixels.
type ResizeArgs struct {
	WindowSize [2]float64 `json:"windowSize"`
	DrawSize   [2]uint32  `json:"drawSize"`
}

// Viewport returns viewport information filling the entire render area.
func (r ResizeArgs) Viewport() Viewport {
	return Viewport{
		Rect:       [4]int32{0, 0, int32(r.DrawSize[0]), int32(r.DrawSize[1])},
		DrawSize:   r.DrawSize,
		WindowSize: r.WindowSize,
	}
}

// Viewport describes a render area. Rect is [x, y, width, height] in
// pixels with (x, y) the lower left corner.
type Viewport struct {
	Rect       [4]int32   `json:"rect"`
	DrawSize   [2]uint32  `json:"drawSize"`
	WindowSize [2]float64 `json:"windowSize"`
}

// FileDragKind discriminates file drag events.
type FileDragKind string

const (
	FileDragHover  FileDragKind = "hover"
	FileDragDrop   FileDragKind = "drop"
	FileDragCancel FileDragKind = "cancel"
)

// FileDragArgs reports a file being dragged over or dropped on the
// window. Path is empty for cancel.
type FileDragArgs struct {
	Kind FileDragKind `json:"kind"`
	Path string       `json:"path,omitempty"`
}
