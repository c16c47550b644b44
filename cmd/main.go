package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"holdguard/internal/core/holdtimer"
	"holdguard/internal/storage"
	"holdguard/internal/ui/animation"
	"holdguard/internal/ui/holdbutton"
	"holdguard/internal/ui/preferences"
	"holdguard/internal/ui/tray"
)

const appName = "HoldGuard"

var demoItems = []string{
	"Morning run",
	"Read 20 pages",
	"Drink water",
	"Stretch",
}

type options struct {
	configPath       string
	holdDuration     time.Duration
	samplingInterval time.Duration
	disabled         bool
	style            string
	verbose          bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return newCommand(&options{})
}

func newCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "holdguard",
		Short:        "Confirm destructive actions by holding a button down",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			slog.SetDefault(logger)

			configPath, settings, err := resolveSettings(cmd, opts, logger)
			if err != nil {
				return err
			}
			return run(configPath, settings, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default: <user config dir>/"+appName+"/settings.yaml)")
	flags.DurationVar(&opts.holdDuration, "hold-duration", 0, "how long a press must be held to confirm")
	flags.DurationVar(&opts.samplingInterval, "sampling-interval", 0, "how often hold progress is sampled")
	flags.BoolVar(&opts.disabled, "disabled", false, "start with hold-to-confirm disabled")
	flags.StringVar(&opts.style, "style", "", "progress style: border-trace or fill")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func newLogger(out io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// resolveSettings loads the settings file and applies flags given on the
// command line on top of it.
func resolveSettings(cmd *cobra.Command, opts *options, logger *slog.Logger) (string, preferences.Settings, error) {
	configPath := opts.configPath
	if configPath == "" {
		resolved, err := storage.ResolveConfigPath(appName)
		if err != nil {
			return "", preferences.Settings{}, err
		}
		configPath = resolved
	}

	settings, err := storage.LoadSettings(configPath)
	if err != nil {
		logger.Warn("using default settings", "path", configPath, "error", err)
	}

	flags := cmd.Flags()
	if flags.Changed("hold-duration") {
		settings.HoldDuration = opts.holdDuration
	}
	if flags.Changed("sampling-interval") {
		settings.SamplingInterval = opts.samplingInterval
	}
	if flags.Changed("disabled") {
		settings.Disabled = opts.disabled
	}
	if flags.Changed("style") {
		style, err := animation.ParseStyle(opts.style)
		if err != nil {
			return "", preferences.Settings{}, err
		}
		settings.Style = style
	}

	if err := settings.HoldConfig().Validate(); err != nil {
		return "", preferences.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return configPath, settings, nil
}

type itemRow struct {
	name   string
	row    *fyne.Container
	button *holdbutton.Button
}

func run(configPath string, settings preferences.Settings, logger *slog.Logger) error {
	fyneApp := app.NewWithID("com.holdguard.app")
	window := fyneApp.NewWindow(appName)

	confirmed := 0
	counter := widget.NewLabel("")
	setCounter := func() {
		counter.SetText(fmt.Sprintf("Deleted: %d", confirmed))
	}
	setCounter()

	rows := container.NewVBox()
	var items []*itemRow
	var trayManager *tray.Manager

	removeItem := func(item *itemRow) {
		for i, candidate := range items {
			if candidate == item {
				items = append(items[:i], items[i+1:]...)
				break
			}
		}
		rows.Remove(item.row)
		item.button.Teardown()
	}

	for _, name := range demoItems {
		item := &itemRow{name: name}
		button, err := holdbutton.New("Hold to delete", settings.HoldConfig(), settings.Look(), func() {
			confirmed++
			logger.Info("item deleted", "item", item.name)
			setCounter()
			if trayManager != nil {
				trayManager.SetConfirmed(confirmed)
			}
			removeItem(item)
		}, holdtimer.Options{Logger: logger.With("item", name)})
		if err != nil {
			return err
		}
		item.button = button
		item.row = container.NewBorder(nil, nil, nil, button, widget.NewLabel(name))
		items = append(items, item)
		rows.Add(item.row)
		watchStatus(button, func(state holdtimer.State) {
			if trayManager != nil {
				trayManager.SetStatus(string(state))
			}
		})
	}

	applySettings := func(updated preferences.Settings) {
		settings = updated
		for _, item := range items {
			if err := item.button.SetHoldConfig(settings.HoldConfig()); err != nil {
				logger.Error("apply hold settings", "error", err)
				return
			}
			item.button.SetLook(settings.Look())
		}
		if trayManager != nil {
			trayManager.SetDisabled(settings.Disabled)
		}
		if err := storage.SaveSettings(configPath, settings); err != nil {
			logger.Error("save settings", "path", configPath, "error", err)
		}
	}

	prefsWindow := preferences.New(fyneApp, settings, applySettings)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnPreferences: prefsWindow.Show,
			OnToggleDisable: func() {
				updated := settings
				updated.Disabled = !settings.Disabled
				prefsWindow.UpdateSettings(updated)
				applySettings(updated)
			},
			OnQuit: fyneApp.Quit,
		})
		trayManager.SetDisabled(settings.Disabled)
	} else {
		logger.Debug("system tray unsupported on this platform")
	}

	settingsButton := widget.NewButton("Settings", prefsWindow.Show)
	header := container.NewBorder(nil, nil, counter, settingsButton)
	window.SetContent(container.NewBorder(header, nil, nil, nil, container.NewVScroll(rows)))
	window.Resize(fyne.NewSize(420, 320))
	window.SetOnClosed(func() {
		for _, item := range items {
			item.button.Teardown()
		}
		fyneApp.Quit()
	})

	window.ShowAndRun()
	return nil
}

// watchStatus forwards state changes of a button to onState on the UI goroutine.
func watchStatus(button *holdbutton.Button, onState func(holdtimer.State)) {
	events := button.SubscribeStates(8)
	go func() {
		for event := range events {
			state := event.State
			fyne.Do(func() {
				onState(state)
			})
		}
	}()
}
