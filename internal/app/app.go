package app

import (
	"context"
	"net/http"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgconfig"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkglog"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgrouter"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkguid"
)

type App struct {
	config     pkgconfig.Config
	uuid       pkguid.StringID
	router     *pkgrouter.Router
	httpServer *http.Server
	closerFn   map[string]func(context.Context) error
}

func New() *App {
	app := &App{}
	pkglog.InitLogging()
	app.initConfig()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()
	return app
}
