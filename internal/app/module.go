package app

import (
	"log/slog"
	"os"

	fp "github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.flight-plan.enabled") {
		if err := fp.New(fp.Dependency{
			Config: a.config,
			Router: a.router,
		}); err != nil {
			slog.Error("failed to init module flight-plan", "error", err)
			os.Exit(1)
		}
	}
}
