// Package board implements the main window: one card per timer with
// play/pause/reset controls, a segment bar, and a mode-aware header.
package board

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"multitimer/internal/core/model"
	"multitimer/internal/core/registry"
	"multitimer/internal/core/settings"
	"multitimer/internal/core/uimode"
	"multitimer/internal/ui/animation"
)

// Config wires the board to the engine components.
type Config struct {
	Registry   *registry.Registry
	Settings   *settings.Controller
	Detector   *uimode.Detector
	Entry      model.EntryDefaults
	Animations animation.Config

	// OnOpenSettings opens the settings panel.
	OnOpenSettings func()
	// OnResize receives the board width on every layout pass.
	OnResize func(width float32)
}

// Board is the main MultiTimer window.
type Board struct {
	app    fyne.App
	window fyne.Window
	config Config

	header *fyne.Container
	cards  *fyne.Container
}

// New creates the board window.
func New(app fyne.App, config Config) *Board {
	window := app.NewWindow("MultiTimer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	board := &Board{
		app:    app,
		window: window,
		config: config,
		header: container.NewHBox(),
		cards:  container.NewVBox(),
	}
	board.refreshHeader()

	content := container.NewBorder(board.header, nil, nil, nil, container.NewVScroll(board.cards))
	watched := container.New(&watchedLayout{onWidth: config.OnResize}, content)
	window.SetContent(watched)
	window.Resize(fyne.NewSize(520, 640))

	if config.Detector != nil {
		modes := config.Detector.Subscribe(2)
		go func() {
			for range modes {
				fyne.Do(board.refreshHeader)
			}
		}()
	}
	if config.Settings != nil {
		changes := config.Settings.Subscribe(4)
		go func() {
			for range changes {
				fyne.Do(board.refreshHeader)
			}
		}()
	}

	return board
}

// Window returns the underlying window.
func (board *Board) Window() fyne.Window {
	return board.window
}

// Show shows the board window.
func (board *Board) Show() {
	board.window.Show()
}

// AddTimer creates a timer from a time entry and appends its card. The
// segmented-animation flag is sampled here, at creation time.
func (board *Board) AddTimer(minutes, seconds int) error {
	duration, err := model.New(minutes, seconds)
	if err != nil {
		return err
	}
	if board.config.Settings != nil && board.config.Settings.SegmentedAnimation() {
		count := board.config.Entry.SegmentCount
		if count <= 0 {
			count = duration.Seconds()
		}
		duration, err = duration.WithSegments(count)
		if err != nil {
			return err
		}
	}

	index, timer := board.config.Registry.Create(duration)
	card := newCard(board, index, timer)
	board.cards.Add(card.root)
	board.cards.Refresh()
	return nil
}

func (board *Board) removeCard(card *card) {
	if err := board.config.Registry.Remove(card.index); err != nil {
		return
	}
	card.dispose()
	board.cards.Remove(card.root)
	board.cards.Refresh()
}

// refreshHeader rebuilds the header for the current UI mode: desktop
// shows the toggles inline, mobile collapses them behind the settings
// button.
func (board *Board) refreshHeader() {
	title := widget.NewLabelWithStyle("MultiTimer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	addButton := widget.NewButtonWithIcon("", theme.ContentAddIcon(), board.openEntryDialog)
	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if board.config.OnOpenSettings != nil {
			board.config.OnOpenSettings()
		}
	})

	board.header.Objects = nil
	if board.config.Detector != nil && board.config.Detector.Mode() == uimode.ModeMobile {
		board.header.Add(title)
		board.header.Add(layout.NewSpacer())
		board.header.Add(settingsButton)
		board.header.Add(addButton)
	} else {
		segmented := widget.NewCheck("Segments", func(enabled bool) {
			if board.config.Settings != nil {
				board.config.Settings.SetSegmentedAnimation(enabled)
			}
		})
		autoStart := widget.NewCheck("Auto-start", func(enabled bool) {
			if board.config.Settings != nil {
				board.config.Settings.SetAutoStart(enabled)
			}
		})
		if board.config.Settings != nil {
			segmented.SetChecked(board.config.Settings.SegmentedAnimation())
			autoStart.SetChecked(board.config.Settings.AutoStart())
		}
		board.header.Add(title)
		board.header.Add(layout.NewSpacer())
		board.header.Add(segmented)
		board.header.Add(autoStart)
		board.header.Add(addButton)
	}
	board.header.Refresh()
}

func (board *Board) openEntryDialog() {
	minutesEntry := widget.NewEntry()
	secondsEntry := widget.NewEntry()
	minutesEntry.SetText(strconv.Itoa(board.config.Entry.Minutes))
	secondsEntry.SetText(strconv.Itoa(board.config.Entry.Seconds))

	items := []*widget.FormItem{
		widget.NewFormItem("Minutes", minutesEntry),
		widget.NewFormItem("Seconds", secondsEntry),
	}
	dialog.ShowForm("Add timer", "Create", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		minutes, err := strconv.Atoi(minutesEntry.Text)
		if err != nil {
			dialog.ShowError(model.ErrInvalidDuration, board.window)
			return
		}
		seconds, err := strconv.Atoi(secondsEntry.Text)
		if err != nil {
			dialog.ShowError(model.ErrInvalidDuration, board.window)
			return
		}
		if err := board.AddTimer(minutes, seconds); err != nil {
			dialog.ShowError(err, board.window)
		}
	}, board.window)
}

// watchedLayout fills the area with its children and reports the width of
// every layout pass, which feeds the UI mode detector's resize handling.
type watchedLayout struct {
	onWidth func(float32)
}

func (l *watchedLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, object := range objects {
		childMin := object.MinSize()
		if childMin.Width > minSize.Width {
			minSize.Width = childMin.Width
		}
		if childMin.Height > minSize.Height {
			minSize.Height = childMin.Height
		}
	}
	return minSize
}

func (l *watchedLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if l.onWidth != nil {
		l.onWidth(size.Width)
	}
	for _, object := range objects {
		object.Resize(size)
		object.Move(fyne.NewPos(0, 0))
	}
}
