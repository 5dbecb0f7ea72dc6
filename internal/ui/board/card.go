package board

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"multitimer/internal/core/countdown"
	"multitimer/internal/core/segment"
	"multitimer/internal/ui/animation"
)

var (
	timeColor     = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	finishedColor = color.NRGBA{R: 226, G: 82, B: 65, A: 255}
	segmentColor  = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
)

// card is the view of a single timer.
type card struct {
	board *Board
	index int
	timer *countdown.Timer

	root       fyne.CanvasObject
	timeLabel  *canvas.Text
	playPause  *widget.Button
	segmentBar *fyne.Container
	rects      []*canvas.Rectangle
	engine     *animation.Engine
	runCtx     context.Context
	cancel     context.CancelFunc
	lastHidden int
}

func newCard(board *Board, index int, timer *countdown.Timer) *card {
	runCtx, cancel := context.WithCancel(context.Background())
	view := &card{
		board:  board,
		index:  index,
		timer:  timer,
		runCtx: runCtx,
		cancel: cancel,
	}

	view.timeLabel = canvas.NewText(formatRemaining(timer.Remaining()), timeColor)
	view.timeLabel.TextStyle = fyne.TextStyle{Bold: true}
	view.timeLabel.TextSize = 28

	view.playPause = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), view.togglePlayPause)
	resetButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		timer.Reset()
	})
	removeButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		board.removeCard(view)
	})

	view.segmentBar = container.New(layout.NewMaxLayout())
	view.buildSegments()

	view.engine = animation.New(board.config.Animations, func(segmentIndex int, alpha float32) {
		fyne.Do(func() {
			view.setSegmentAlpha(segmentIndex, alpha)
		})
	})

	controls := container.NewHBox(view.timeLabel, layout.NewSpacer(), view.playPause, resetButton, removeButton)
	view.root = widget.NewCard("", "", container.NewVBox(controls, view.segmentBar))

	events := timer.Subscribe(8)
	go func() {
		for event := range events {
			update := event
			fyne.Do(func() {
				view.apply(update)
			})
		}
	}()

	// The timer may already be running (auto-start); render its state now.
	view.sync()
	return view
}

func (view *card) dispose() {
	view.cancel()
	view.engine.Stop()
}

func (view *card) togglePlayPause() {
	switch view.timer.Status() {
	case countdown.StatusRunning:
		_ = view.timer.Pause()
	case countdown.StatusIdle, countdown.StatusPaused:
		_ = view.timer.Start()
	case countdown.StatusFinished:
		// A finished timer needs a reset first.
	}
}

func (view *card) buildSegments() {
	lengths := view.timer.Duration().SegmentLengths()
	if len(lengths) == 0 {
		view.segmentBar.Hide()
		return
	}
	view.rects = make([]*canvas.Rectangle, len(lengths))
	objects := make([]fyne.CanvasObject, len(lengths))
	for index := range lengths {
		rect := canvas.NewRectangle(segmentColor)
		rect.SetMinSize(fyne.NewSize(12, 10))
		view.rects[index] = rect
		objects[index] = rect
	}
	grid := container.NewGridWithColumns(len(lengths), objects...)
	view.segmentBar.Objects = []fyne.CanvasObject{grid}
	view.segmentBar.Show()
	view.segmentBar.Refresh()
}

func (view *card) apply(event countdown.Event) {
	view.render(event.Status, event.Remaining, true)
}

// sync renders the timer's current state outside of an event, without
// animating segment changes.
func (view *card) sync() {
	view.render(view.timer.Status(), view.timer.Remaining(), false)
}

func (view *card) render(status countdown.Status, remaining time.Duration, animate bool) {
	view.timeLabel.Text = formatRemaining(remaining)
	if status == countdown.StatusFinished {
		view.timeLabel.Color = finishedColor
	} else {
		view.timeLabel.Color = timeColor
	}
	view.timeLabel.Refresh()

	if status == countdown.StatusRunning {
		view.playPause.SetIcon(theme.MediaPauseIcon())
	} else {
		view.playPause.SetIcon(theme.MediaPlayIcon())
	}

	view.applySegments(remaining, animate)

	if len(view.rects) > 0 {
		// Mirrors the reset behavior of the segment view: a reset clears
		// the bar, a fresh start brings it back.
		if status == countdown.StatusIdle {
			view.segmentBar.Hide()
		} else if !view.segmentBar.Visible() {
			view.segmentBar.Show()
			view.segmentBar.Refresh()
		}
	}
}

func (view *card) applySegments(remaining time.Duration, animate bool) {
	if len(view.rects) == 0 {
		return
	}
	segments := segment.ForDuration(view.timer.Duration(), remaining)
	hidden := segment.HiddenCount(segments)

	for index := view.lastHidden; index < hidden; index++ {
		if animate {
			view.engine.FadeOut(view.runCtx, index)
		} else {
			view.engine.Hide(index)
		}
	}
	for index := hidden; index < view.lastHidden; index++ {
		view.engine.Show(index)
	}
	view.lastHidden = hidden
}

func (view *card) setSegmentAlpha(segmentIndex int, alpha float32) {
	if segmentIndex < 0 || segmentIndex >= len(view.rects) {
		return
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	fill := segmentColor
	fill.A = uint8(alpha * 255)
	view.rects[segmentIndex].FillColor = fill
	view.rects[segmentIndex].Refresh()
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
