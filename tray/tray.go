// Package tray is the OS notification-area surface: icon, tooltip,
// click events and the Quit menu.
package tray

import (
	"errors"
	"fmt"
	"image"

	"github.com/google/uuid"

	"runcat/log"
)

// EventBuffer bounds each event queue. Events past it are dropped.
const EventBuffer = 16

var (
	ErrEmptyIcon = errors.New("tray: empty icon")
	ErrClosed    = errors.New("tray: surface closed")
	ErrNotReady  = errors.New("tray: surface did not become ready")
)

type Button int

const (
	Left Button = iota
	Right
	Middle
)

func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Middle:
		return "middle"
	}
	return fmt.Sprintf("button(%d)", int(b))
}

type ButtonState int

const (
	Up ButtonState = iota
	Down
)

func (s ButtonState) String() string {
	if s == Down {
		return "down"
	}
	return "up"
}

// Click is a mouse interaction with the tray icon. Position is in screen
// coordinates when the backend reports it, zero otherwise.
type Click struct {
	Button   Button
	State    ButtonState
	Position image.Point
}

// MenuID identifies a menu item for the lifetime of the process.
type MenuID string

func NewMenuID() MenuID { return MenuID(uuid.NewString()) }

type MenuEvent struct {
	ID MenuID
}

// Surface is what the animator drives. Pushes are best effort.
type Surface interface {
	SetIcon(icon []byte) error
	SetTooltip(text string) error
	Clicks() <-chan Click
	MenuEvents() <-chan MenuEvent
	QuitID() MenuID
}

// queue is a bounded channel with a non-blocking send.
type queue[T any] struct {
	name string
	ch   chan T
}

func newQueue[T any](name string) queue[T] {
	return queue[T]{name: name, ch: make(chan T, EventBuffer)}
}

func (q queue[T]) push(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		log.Warnf("tray: %s queue full, dropping event", q.name)
		return false
	}
}

// click enqueues a full press as Down then Up.
func (q queue[T]) click(down, up T) {
	if q.push(down) {
		q.push(up)
	}
}
