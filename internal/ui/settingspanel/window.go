// Package settingspanel implements the settings panel window. It binds
// the toggles to the settings controller and owns no timer state.
package settingspanel

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"multitimer/internal/core/settings"
)

// Window handles the settings panel UI.
type Window struct {
	window     fyne.Window
	controller *settings.Controller
	segmented  *widget.Check
	autoStart  *widget.Check
}

// New creates the settings panel bound to the controller.
func New(app fyne.App, controller *settings.Controller) *Window {
	window := app.NewWindow("MultiTimer Settings")

	segmented := widget.NewCheck("Segmented animation", func(enabled bool) {
		controller.SetSegmentedAnimation(enabled)
	})
	autoStart := widget.NewCheck("Auto-start new timers", func(enabled bool) {
		controller.SetAutoStart(enabled)
	})

	note := widget.NewLabel("Changes apply to timers created afterwards.")
	note.TextStyle = fyne.TextStyle{Italic: true}

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timers", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		segmented,
		autoStart,
		note,
	)

	closeButton := widget.NewButton("Close", func() {
		window.Hide()
	})
	buttons := container.NewHBox(layout.NewSpacer(), closeButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(340, 220))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	panel := &Window{
		window:     window,
		controller: controller,
		segmented:  segmented,
		autoStart:  autoStart,
	}

	changes := controller.Subscribe(4)
	go func() {
		for change := range changes {
			update := change
			fyne.Do(func() {
				panel.applyChange(update)
			})
		}
	}()

	return panel
}

// Show syncs the checks with the controller and shows the panel.
func (panel *Window) Show() {
	panel.segmented.SetChecked(panel.controller.SegmentedAnimation())
	panel.autoStart.SetChecked(panel.controller.AutoStart())
	panel.window.Show()
	panel.window.RequestFocus()
}

// Hide hides the panel.
func (panel *Window) Hide() {
	panel.window.Hide()
}

func (panel *Window) applyChange(change settings.Change) {
	panel.segmented.SetChecked(change.SegmentedAnimation)
	panel.autoStart.SetChecked(change.AutoStart)
}
