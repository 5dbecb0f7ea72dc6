package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowBoard func()
	OnSettings  func()
	OnPauseAll  func()
	OnResumeAll func()
	OnQuit      func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: no timers", nil)
	manager.statusItem.Disabled = true

	app.SetSystemTrayMenu(manager.buildMenu())
	return manager
}

// SetStatus updates the status line, e.g. "2 running, next 00:42".
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.app.SetSystemTrayMenu(manager.buildMenu())
}

func (manager *Manager) buildMenu() *fyne.Menu {
	show := fyne.NewMenuItem("Show timers", func() {
		if manager.callbacks.OnShowBoard != nil {
			manager.callbacks.OnShowBoard()
		}
	})
	settings := fyne.NewMenuItem("Settings", func() {
		if manager.callbacks.OnSettings != nil {
			manager.callbacks.OnSettings()
		}
	})
	pauseAll := fyne.NewMenuItem("Pause all", func() {
		if manager.callbacks.OnPauseAll != nil {
			manager.callbacks.OnPauseAll()
		}
	})
	resumeAll := fyne.NewMenuItem("Resume all", func() {
		if manager.callbacks.OnResumeAll != nil {
			manager.callbacks.OnResumeAll()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	return fyne.NewMenu("MultiTimer", manager.statusItem, show, settings, pauseAll, resumeAll, quit)
}
