package main

import (
	"context"
	"embed"
	"log"

	"fyne.io/fyne/v2/app"

	"Lapwatch/clock"
	"Lapwatch/config"
	"Lapwatch/i18n"
	"Lapwatch/sound"
	"Lapwatch/ui"
)

//go:embed assets/*
var content embed.FS

func main() {
	defaults, err := content.ReadFile("assets/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read built-in config: %v", err)
	}

	path, err := config.DefaultPath()
	if err != nil {
		log.Printf("No user config: %v", err)
	}
	cfg, err := config.Load(defaults, path)
	if err != nil {
		log.Printf("Using default settings: %v", err)
		cfg = config.Default()
	}

	if err := i18n.Init(content, "assets/locales", cfg.Language); err != nil {
		log.Printf("Translations incomplete: %v", err)
	}

	log.Printf("Starting %s (language %s)", cfg.Window.Title, i18n.GetLang())

	fyneApp := app.New()
	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	player, err := sound.NewPlayer(cfg.LapSound)
	if err != nil {
		log.Printf("Lap sound unavailable: %v", err)
	}
	if err := player.Open(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}

	a := NewAppManager(clock.NewReal(), cfg, player)
	w, face := ui.CreateMainWindow(a, fyneApp, cfg.Window, a.labels)
	a.SetView(face)

	ctx, cancel := context.WithCancel(context.Background())
	w.SetOnClosed(func() {
		cancel()
		a.Shutdown()
	})

	if path != "" {
		if err := config.Watch(ctx, defaults, path, a.ApplyConfig); err != nil {
			log.Printf("Config changes will not be picked up: %v", err)
		}
	}

	a.Start()
	w.ShowAndRun()
}
