// /internal/notify/notify.go

// Package notify shows the dialogs raised while preparing and launching
// the game.
package notify

import (
	"sync"

	"forge-launcher/internal/log"

	"github.com/pterm/pterm"
)

// Notifier shows a titled message to the player.
type Notifier interface {
	Info(title, msg string)
	Warn(title, msg string)
	Error(title, msg string)
}

// Terminal draws each dialog as a titled box.
type Terminal struct{}

func (Terminal) Info(title, msg string) {
	pterm.DefaultBox.WithTitle(pterm.LightGreen(title)).Println(msg)
}

func (Terminal) Warn(title, msg string) {
	pterm.DefaultBox.WithTitle(pterm.LightYellow(title)).Println(msg)
}

func (Terminal) Error(title, msg string) {
	pterm.DefaultBox.WithTitle(pterm.LightRed(title)).Println(msg)
}

// Log writes dialogs to the application log, for non-interactive runs.
type Log struct{}

func (Log) Info(title, msg string)  { log.Log.Info("%s: %s", title, msg) }
func (Log) Warn(title, msg string)  { log.Log.Warn("%s: %s", title, msg) }
func (Log) Error(title, msg string) { log.Log.Error("%s: %s", title, msg) }

// Level of a recorded dialog.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Dialog is one message seen by a Recorder.
type Dialog struct {
	Level Level
	Title string
	Msg   string
}

// Recorder keeps every dialog in memory.
type Recorder struct {
	mu      sync.Mutex
	dialogs []Dialog
}

func (r *Recorder) Info(title, msg string)  { r.add(LevelInfo, title, msg) }
func (r *Recorder) Warn(title, msg string)  { r.add(LevelWarn, title, msg) }
func (r *Recorder) Error(title, msg string) { r.add(LevelError, title, msg) }

func (r *Recorder) add(level Level, title, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dialogs = append(r.dialogs, Dialog{Level: level, Title: title, Msg: msg})
}

// Dialogs returns a copy of what has been shown so far.
func (r *Recorder) Dialogs() []Dialog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Dialog(nil), r.dialogs...)
}

// Multi shows every dialog on all of its notifiers.
type Multi []Notifier

func (m Multi) Info(title, msg string) {
	for _, n := range m {
		n.Info(title, msg)
	}
}

func (m Multi) Warn(title, msg string) {
	for _, n := range m {
		n.Warn(title, msg)
	}
}

func (m Multi) Error(title, msg string) {
	for _, n := range m {
		n.Error(title, msg)
	}
}
