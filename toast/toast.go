// Package toast keeps a bounded queue of expiring notifications.
package toast

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind is the severity of a toast.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// Position is the screen corner or edge toasts stack against.
type Position string

const (
	TopRight     Position = "top-right"
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	BottomRight  Position = "bottom-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
)

// Toast is one notification.
// A zero Duration keeps it until dismissed.
type Toast struct {
	Id          string
	Kind        Kind
	Title       string
	Message     string
	Duration    time.Duration
	CloseButton bool
}

// Option overrides a default of a toast.
type Option func(*Toast)

// Title sets a heading above the message.
func Title(title string) Option {
	return func(tst *Toast) { tst.Title = title }
}

// Duration sets how long the toast shows, zero for until dismissed.
func Duration(dur time.Duration) Option {
	return func(tst *Toast) { tst.Duration = dur }
}

// CloseButton sets whether the toast offers a close control.
func CloseButton(show bool) Option {
	return func(tst *Toast) { tst.CloseButton = show }
}

// Timer is a scheduled removal.
type Timer interface {
	Stop() bool
}

// Config is set once when the manager is created.
type Config struct {
	Position        Position      `yaml:"position"`
	MaxToasts       int           `yaml:"maxToasts"`
	DefaultDuration time.Duration `yaml:"defaultDuration"`
	CloseButton     bool          `yaml:"closeButton"`
}

// Manager is the notification service handed to anything that notifies.
// It is safe for concurrent use; expiry runs on timer goroutines.
type Manager struct {
	cfg Config

	mu       sync.Mutex
	toasts   []Toast
	timers   map[string]Timer
	closed   bool
	onChange func()

	after func(time.Duration, func()) Timer
}

// New creates a manager, defaulting to 5 toasts of 6 seconds at top right.
func (cfg Config) New() *Manager {

	if cfg.Position == "" {
		cfg.Position = TopRight
	}
	if cfg.MaxToasts <= 0 {
		cfg.MaxToasts = 5
	}
	if cfg.DefaultDuration == 0 {
		cfg.DefaultDuration = 6 * time.Second
	}

	return &Manager{
		cfg:    cfg,
		timers: map[string]Timer{},
		after: func(dur time.Duration, fn func()) Timer {
			return time.AfterFunc(dur, fn)
		},
	}
}

// OnChange registers fn to run after expiry removes a toast.
// It is called without the lock held and from the timer goroutine.
func (mgr *Manager) OnChange(fn func()) {

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	mgr.onChange = fn
}

// Position returns where toasts are anchored.
func (mgr *Manager) Position() Position {
	return mgr.cfg.Position
}

// Show appends a toast and returns its id.
// The oldest toasts are dropped when the queue is over its cap.
func (mgr *Manager) Show(kind Kind, message string, opts ...Option) string {

	tst := Toast{
		Id:          uuid.NewString(),
		Kind:        kind,
		Message:     message,
		Duration:    mgr.cfg.DefaultDuration,
		CloseButton: mgr.cfg.CloseButton,
	}
	for _, opt := range opts {
		opt(&tst)
	}

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if mgr.closed {
		return ""
	}

	mgr.toasts = append(mgr.toasts, tst)
	for len(mgr.toasts) > mgr.cfg.MaxToasts {
		mgr.stop(mgr.toasts[0].Id)
		mgr.toasts = mgr.toasts[1:]
	}

	if tst.Duration > 0 {
		id := tst.Id
		mgr.timers[id] = mgr.after(tst.Duration, func() { mgr.expire(id) })
	}

	return tst.Id
}

func (mgr *Manager) Success(message string, opts ...Option) string {
	return mgr.Show(Success, message, opts...)
}

func (mgr *Manager) Error(message string, opts ...Option) string {
	return mgr.Show(Error, message, opts...)
}

func (mgr *Manager) Warning(message string, opts ...Option) string {
	return mgr.Show(Warning, message, opts...)
}

func (mgr *Manager) Info(message string, opts ...Option) string {
	return mgr.Show(Info, message, opts...)
}

// Dismiss removes a toast; unknown or already removed ids are ignored.
func (mgr *Manager) Dismiss(id string) {

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	mgr.remove(id)
}

// DismissLatest removes the newest toast, if any.
func (mgr *Manager) DismissLatest() {

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if len(mgr.toasts) > 0 {
		mgr.remove(mgr.toasts[len(mgr.toasts)-1].Id)
	}
}

// ClearAll removes every toast and cancels pending expiry.
func (mgr *Manager) ClearAll() {

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	mgr.clear()
}

// Close clears the queue and ignores further toasts.
func (mgr *Manager) Close() {

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	mgr.clear()
	mgr.closed = true
}

// Toasts returns the active toasts, oldest first.
func (mgr *Manager) Toasts() []Toast {

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	return slices.Clone(mgr.toasts)
}

// unexported

func (mgr *Manager) expire(id string) {

	mgr.mu.Lock()
	removed := mgr.remove(id)
	onChange := mgr.onChange
	mgr.mu.Unlock()

	if removed && onChange != nil {
		onChange()
	}
}

// remove expects the lock held.
func (mgr *Manager) remove(id string) bool {

	mgr.stop(id)

	idx := slices.IndexFunc(mgr.toasts, func(tst Toast) bool { return tst.Id == id })
	if idx < 0 {
		return false
	}

	mgr.toasts = slices.Delete(mgr.toasts, idx, idx+1)
	return true
}

func (mgr *Manager) stop(id string) {

	if tmr, ok := mgr.timers[id]; ok {
		tmr.Stop()
		delete(mgr.timers, id)
	}
}

func (mgr *Manager) clear() {

	for id := range mgr.timers {
		mgr.stop(id)
	}
	mgr.toasts = nil
}
