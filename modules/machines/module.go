// Package machines provides machine and machine-part tracking.
// This is the public API for the machines bounded context.
package machines

import (
	"log/slog"
	"net/http"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/application/commands"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/application/queries"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
	httphandler "github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/infrastructure/http"
)

// Module is the public API for the machines bounded context.
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux)
}

// Config holds the module configuration.
type Config struct {
	MachineRepository     domain.MachineRepository
	MachinePartRepository domain.MachinePartRepository
	Logger                *slog.Logger
}

type module struct {
	setRunningHandler   *commands.SetMachineRunningHandler
	upsertPartHandler   *commands.UpsertMachinePartHandler
	addPartQtyHandler   *commands.AddMachinePartQtyHandler
	getMachineHandler   *queries.GetMachineHandler
	listMachinesHandler *queries.ListMachinesHandler
	getMetricsHandler   *queries.GetMachineMetricsHandler
	listPartsHandler    *queries.ListMachinePartsHandler
}

// New creates a new machines module.
func New(cfg Config) Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "machines")
	logger.Debug("machines module initialized")

	return &module{
		setRunningHandler:   commands.NewSetMachineRunningHandler(cfg.MachineRepository),
		upsertPartHandler:   commands.NewUpsertMachinePartHandler(cfg.MachinePartRepository),
		addPartQtyHandler:   commands.NewAddMachinePartQtyHandler(cfg.MachinePartRepository),
		getMachineHandler:   queries.NewGetMachineHandler(cfg.MachineRepository),
		listMachinesHandler: queries.NewListMachinesHandler(cfg.MachineRepository),
		getMetricsHandler:   queries.NewGetMachineMetricsHandler(cfg.MachineRepository),
		listPartsHandler:    queries.NewListMachinePartsHandler(cfg.MachinePartRepository),
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	httphandler.RegisterRoutes(mux,
		m.setRunningHandler,
		m.upsertPartHandler,
		m.addPartQtyHandler,
		m.getMachineHandler,
		m.listMachinesHandler,
		m.getMetricsHandler,
		m.listPartsHandler,
	)
}
