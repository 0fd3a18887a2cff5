package tray

import "sync"

// Fake is an in-memory Surface for tests.
type Fake struct {
	quitID MenuID
	clicks queue[Click]
	menu   queue[MenuEvent]

	mu       sync.Mutex
	icons    [][]byte
	tooltips []string
	iconErr  error
	tipErr   error
}

func NewFake() *Fake {
	return &Fake{
		quitID: NewMenuID(),
		clicks: newQueue[Click]("click"),
		menu:   newQueue[MenuEvent]("menu"),
	}
}

// FailPushes makes every following SetIcon/SetTooltip return the given
// errors. Failed pushes are still recorded.
func (f *Fake) FailPushes(iconErr, tipErr error) {
	f.mu.Lock()
	f.iconErr, f.tipErr = iconErr, tipErr
	f.mu.Unlock()
}

func (f *Fake) SetIcon(icon []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.icons = append(f.icons, icon)
	return f.iconErr
}

func (f *Fake) SetTooltip(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tooltips = append(f.tooltips, text)
	return f.tipErr
}

func (f *Fake) Clicks() <-chan Click          { return f.clicks.ch }
func (f *Fake) MenuEvents() <-chan MenuEvent { return f.menu.ch }
func (f *Fake) QuitID() MenuID               { return f.quitID }

func (f *Fake) SimClick(b Button, s ButtonState) bool { return f.clicks.push(Click{Button: b, State: s}) }
func (f *Fake) SimMenu(id MenuID) bool                { return f.menu.push(MenuEvent{ID: id}) }
func (f *Fake) SimQuit() bool                         { return f.SimMenu(f.quitID) }

func (f *Fake) Icons() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.icons...)
}

func (f *Fake) Tooltips() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tooltips...)
}
