package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnPreferences   func()
	OnToggleDisable func()
	OnQuit          func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	countItem   *fyne.MenuItem
	disableItem *fyne.MenuItem
	callbacks   Callbacks
	disabled    bool
	status      string
	confirmed   int
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		status:    "idle",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.countItem = fyne.NewMenuItem("", nil)
	manager.countItem.Disabled = true

	manager.disableItem = fyne.NewMenuItem("", func() {
		if manager.callbacks.OnToggleDisable != nil {
			manager.callbacks.OnToggleDisable()
		}
	})

	manager.refresh()
	return manager
}

// SetStatus updates the hold status label.
func (manager *Manager) SetStatus(status string) {
	manager.status = status
	manager.refresh()
}

// SetDisabled updates the disable toggle.
func (manager *Manager) SetDisabled(disabled bool) {
	manager.disabled = disabled
	manager.refresh()
}

// SetConfirmed updates the confirmed action count.
func (manager *Manager) SetConfirmed(count int) {
	manager.confirmed = count
	manager.refresh()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu("Hold Guard",
		manager.statusItem,
		manager.countItem,
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		manager.disableItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}

func (manager *Manager) refresh() {
	status := manager.status
	if manager.disabled {
		status = fmt.Sprintf("%s (disabled)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.countItem.Label = fmt.Sprintf("Confirmed: %d", manager.confirmed)
	if manager.disabled {
		manager.disableItem.Label = "Enable holds"
	} else {
		manager.disableItem.Label = "Disable holds"
	}

	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}
