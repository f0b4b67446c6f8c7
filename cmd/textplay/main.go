package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"textplay/internal/config"
	"textplay/internal/controllers"
	"textplay/internal/fonts"
	"textplay/internal/logger"
	"textplay/internal/models"
	"textplay/internal/views"
	"textplay/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "TextPlay"
	AppID      = "com.classroom.textplay"
	AppVersion = "1.0.0"
)

// Application owns the fyne app and the wiring between view and controller
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.InteractionController
	view       *views.MainView
}

func main() {
	configPath := flag.String("config", os.Getenv(config.EnvConfigPath), "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	setupGracefulShutdown(ctx, application)

	application.Run()
}

// NewApplication builds the window, widgets and controller from cfg
func NewApplication(cfg config.Config) (*Application, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	appLogger := logger.New(cfg.Log.Format, level)

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(cfg.Window.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetFixedSize(true)

	style := models.FontStyle(cfg.Text.FontStyle)
	resolver := fonts.NewResolver(cfg.Text.FontDirs, appLogger)
	canvas := components.NewTextCanvas(resolver)
	controls := components.NewControlPanel(style, cfg.Text.FontSize)

	controller := controllers.NewInteractionController(canvas, controls, appLogger,
		controllers.WithDefaults(style, cfg.Text.FontSize))

	view := views.NewMainView(window, canvas, controls, appLogger)
	view.Bind(controller)

	appLogger.Info("Application", "initialized", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
		"go_version":  runtime.Version(),
		"font_dirs":   len(cfg.Text.FontDirs),
		"font_style":  cfg.Text.FontStyle,
		"font_size":   cfg.Text.FontSize,
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		view:       view,
	}, nil
}

// Run shows the window and blocks until the app quits
func (a *Application) Run() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", map[string]interface{}{
			"state": a.controller.State().String(),
		})
	})

	a.view.Show()
	a.fyneApp.Run()
}

// setupGracefulShutdown quits the app on SIGINT or SIGTERM
func setupGracefulShutdown(ctx context.Context, application *Application) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			application.logger.Info("Application", "system signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			fyne.Do(application.fyneApp.Quit)
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()
}
