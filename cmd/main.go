package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"multitimer/internal/clock"
	"multitimer/internal/core/countdown"
	"multitimer/internal/core/registry"
	"multitimer/internal/core/settings"
	"multitimer/internal/core/uimode"
	"multitimer/internal/platform"
	"multitimer/internal/storage"
	"multitimer/internal/ui/animation"
	"multitimer/internal/ui/board"
	"multitimer/internal/ui/settingspanel"
	"multitimer/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName           = "MultiTimer"
	defaultBoardWidth = 520
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	config, err := storage.LoadConfig(appName)
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
	}

	fyneApp := app.NewWithID("io.multitimer.app")

	timeSource := clock.NewReal()
	controller := settings.New(config.Toggles)
	timers := registry.New(countdown.Config{TickInterval: config.Engine.TickInterval}, timeSource, controller)

	signals := newDeviceSignals(defaultBoardWidth)
	detector := uimode.New(signals, uimode.Config{
		MobileBreakpoint: config.UIMode.MobileBreakpoint,
		ResizeDebounce:   config.UIMode.ResizeDebounce,
	}, timeSource)

	panel := settingspanel.New(fyneApp, controller)

	mainBoard := board.New(fyneApp, board.Config{
		Registry:       timers,
		Settings:       controller,
		Detector:       detector,
		Entry:          config.Entry,
		Animations:     animation.DefaultConfig(),
		OnOpenSettings: panel.Show,
		OnResize: func(width float32) {
			signals.SetWidth(width)
			detector.HandleResize()
		},
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShowBoard: mainBoard.Show,
			OnSettings:  panel.Show,
			OnPauseAll: func() {
				pauseAll(timers)
			},
			OnResumeAll: func() {
				resumeAll(timers)
			},
			OnQuit: fyneApp.Quit,
		})
		mainBoard.Window().SetCloseIntercept(mainBoard.Window().Hide)
		go watchStatus(timers, trayManager)
	}

	mainBoard.Show()
	fyneApp.Run()
}

func pauseAll(timers *registry.Registry) {
	for _, timer := range timers.List() {
		if timer.Status() == countdown.StatusRunning {
			_ = timer.Pause()
		}
	}
}

func resumeAll(timers *registry.Registry) {
	for _, timer := range timers.List() {
		if timer.Status() == countdown.StatusPaused {
			_ = timer.Start()
		}
	}
}

func watchStatus(timers *registry.Registry, trayManager *tray.Manager) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		status := statusLine(timers.Snapshot())
		fyne.Do(func() {
			trayManager.SetStatus(status)
		})
	}
}

func statusLine(views []registry.TimerView) string {
	running := 0
	next := -1.0
	for _, view := range views {
		if view.Status == countdown.StatusRunning {
			running++
			if next < 0 || view.RemainingSeconds < next {
				next = view.RemainingSeconds
			}
		}
	}
	if running == 0 {
		if len(views) == 0 {
			return "no timers"
		}
		return fmt.Sprintf("%d timers idle", len(views))
	}
	return fmt.Sprintf("%d running, next %s", running, formatSeconds(next))
}

func formatSeconds(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// deviceSignals feeds the UI mode detector: width comes from the board's
// layout passes, the handheld signal from the Fyne driver.
type deviceSignals struct {
	mu    sync.Mutex
	width float32
}

func newDeviceSignals(width float32) *deviceSignals {
	return &deviceSignals{width: width}
}

// SetWidth records the latest board width.
func (signals *deviceSignals) SetWidth(width float32) {
	signals.mu.Lock()
	signals.width = width
	signals.mu.Unlock()
}

// ViewportWidth returns the last recorded board width.
func (signals *deviceSignals) ViewportWidth() float32 {
	signals.mu.Lock()
	defer signals.mu.Unlock()
	return signals.width
}

// Handheld reports whether the driver runs on a mobile device.
func (signals *deviceSignals) Handheld() bool {
	device := fyne.CurrentDevice()
	return device != nil && device.IsMobile()
}
