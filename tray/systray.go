package tray

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/energye/systray"

	"runcat/log"
)

type Options struct {
	Title     string
	Tooltip   string
	Icon      []byte
	QuitTitle string

	// ReadyTimeout bounds how long Run waits for the OS to accept the
	// icon before OnFail is called with ErrNotReady.
	ReadyTimeout time.Duration
	OnFail       func(error)
}

// Systray is the Surface backed by the native notification area.
type Systray struct {
	quitID MenuID
	clicks queue[Click]
	menu   queue[MenuEvent]

	closed    atomic.Bool
	closeOnce sync.Once
}

func newSystray() *Systray {
	return &Systray{
		quitID: NewMenuID(),
		clicks: newQueue[Click]("click"),
		menu:   newQueue[MenuEvent]("menu"),
	}
}

// Run registers the tray icon and blocks until Close is called. It must
// run on the main goroutine with the OS thread locked.
func Run(opts Options, onReady func(*Systray), onExit func()) {
	s := newSystray()
	ready := make(chan struct{})

	if opts.ReadyTimeout > 0 && opts.OnFail != nil {
		go func() {
			select {
			case <-ready:
			case <-time.After(opts.ReadyTimeout):
				opts.OnFail(ErrNotReady)
			}
		}()
	}

	systray.Run(func() {
		s.setup(opts)
		close(ready)
		if onReady != nil {
			onReady(s)
		}
	}, func() {
		s.closed.Store(true)
		if onExit != nil {
			onExit()
		}
	})
}

func (s *Systray) setup(opts Options) {
	if len(opts.Icon) > 0 {
		systray.SetIcon(opts.Icon)
	}
	if opts.Title != "" {
		systray.SetTitle(opts.Title)
	}
	systray.SetTooltip(opts.Tooltip)

	systray.SetOnClick(func(menu systray.IMenu) {
		s.clicks.click(Click{Button: Left, State: Down}, Click{Button: Left, State: Up})
	})
	systray.SetOnRClick(func(menu systray.IMenu) {
		s.clicks.click(Click{Button: Right, State: Down}, Click{Button: Right, State: Up})
		if err := menu.ShowMenu(); err != nil {
			log.Warnf("tray: show menu: %v", err)
		}
	})

	title := opts.QuitTitle
	if title == "" {
		title = "Quit"
	}
	mQuit := systray.AddMenuItem(title, title)
	mQuit.Click(func() {
		s.menu.push(MenuEvent{ID: s.quitID})
	})
	systray.CreateMenu()
}

func (s *Systray) SetIcon(icon []byte) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if len(icon) == 0 {
		return ErrEmptyIcon
	}
	systray.SetIcon(icon)
	return nil
}

func (s *Systray) SetTooltip(text string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	systray.SetTooltip(text)
	return nil
}

func (s *Systray) Clicks() <-chan Click          { return s.clicks.ch }
func (s *Systray) MenuEvents() <-chan MenuEvent { return s.menu.ch }
func (s *Systray) QuitID() MenuID               { return s.quitID }

// Close removes the icon and makes Run return.
func (s *Systray) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		systray.Quit()
	})
}
