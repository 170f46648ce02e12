package cli

import (
	"context"

	"vitop/internal/app"
	"vitop/internal/canvas"
	"vitop/internal/config"
	"vitop/internal/logger"
	"vitop/internal/metrics"
	"vitop/internal/render"
	"vitop/internal/term"
)

// runMonitor assembles the three concurrent activities and blocks until
// the coordinator exits. Terminal state is restored on every exit path,
// including a fatal render error, so the shell is never left in raw
// mode.
func runMonitor(cfg *config.Config) error {
	log := logger.Default()

	tty, err := term.Open()
	if err != nil {
		return err
	}
	defer tty.Restore()

	screen := render.NewScreen()
	screen.Start()
	defer screen.Stop()

	// Validate already checked the unit name.
	unit, _ := metrics.ParseTemperatureUnit(cfg.TemperatureUnit)
	collector := metrics.NewCollector(metrics.CollectorConfig{
		TemperatureUnit: unit,
		ShowAverageCPU:  cfg.ShowAverageCPU,
	})
	transformer := canvas.NewTransformer(canvas.DefaultWindowSize, metrics.DefaultStaleMax)

	coordinator := app.NewCoordinator(transformer, render.New(screen), app.DefaultTick, log)

	input := app.NewInputSource(tty, coordinator.Events(), coordinator.Done(), log)
	go input.Run()

	sampler := app.NewSamplerSource(collector.Collect, cfg.Rate(),
		coordinator.Events(), coordinator.Done(), log)
	go sampler.Run(context.Background())

	return coordinator.Run()
}
