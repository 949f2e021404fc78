// Package orders provides the order part workflow.
// This is the public API for the orders bounded context.
package orders

import (
	"log/slog"
	"net/http"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/eventbus"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/transaction"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/application/commands"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/application/queries"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	httphandler "github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/infrastructure/http"
)

// Module is the public API for the orders bounded context.
// External communication: HTTP API (RegisterRoutes)
// Cross-module communication: domain events published through the registry.
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux)
}

// Config holds the module configuration.
type Config struct {
	Repository       domain.OrderPartRepository
	StatusRepository domain.StatusRepository
	TxScope          transaction.Scope
	HandlerRegistry  eventbus.HandlerRegistry
	Logger           *slog.Logger
}

type module struct {
	handlers httphandler.Handlers
}

// New creates a new orders module.
func New(cfg Config) Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "orders")

	handlers := httphandler.Handlers{
		CreateOrderPart:      commands.NewCreateOrderPartHandler(cfg.Repository),
		ApprovePendingOrder:  commands.NewApprovePendingOrderHandler(cfg.Repository, cfg.TxScope, cfg.HandlerRegistry),
		ApproveOfficeOrder:   commands.NewApproveOfficeOrderHandler(cfg.Repository, cfg.TxScope, cfg.HandlerRegistry),
		DenyOrderPart:        commands.NewDenyOrderPartHandler(cfg.Repository, cfg.TxScope, cfg.HandlerRegistry),
		ChangeQuantity:       commands.NewChangeQuantityHandler(cfg.Repository),
		RecordQuotation:      commands.NewRecordQuotationHandler(cfg.Repository, cfg.TxScope, cfg.HandlerRegistry),
		ApproveBudget:        commands.NewApproveBudgetHandler(cfg.Repository, cfg.TxScope, cfg.HandlerRegistry),
		MarkPurchased:        commands.NewMarkPurchasedHandler(cfg.Repository, cfg.TxScope, cfg.HandlerRegistry),
		MarkSentToFactory:    commands.NewMarkSentToFactoryHandler(cfg.Repository, cfg.TxScope, cfg.HandlerRegistry),
		MarkReceived:         commands.NewMarkReceivedByFactoryHandler(cfg.Repository, cfg.TxScope, cfg.HandlerRegistry),
		MarkSampleReceived:   commands.NewMarkSampleReceivedHandler(cfg.Repository),
		UpdateOfficeNote:     commands.NewUpdateOfficeNoteHandler(cfg.Repository),
		ApproveStorageWithdr: commands.NewApproveStorageWithdrawalHandler(cfg.Repository),
		GetOrderPart:         queries.NewGetOrderPartHandler(cfg.Repository),
		GetStatusTimeline:    queries.NewGetStatusTimelineHandler(cfg.Repository, cfg.StatusRepository),
		ListOrderParts:       queries.NewListOrderPartsHandler(cfg.Repository),
		ListLinkedOrders:     queries.NewListLinkedOrdersHandler(cfg.Repository),
		GetLastPurchase:      queries.NewGetLastPurchaseHandler(cfg.Repository),
		ListStatuses:         queries.NewListStatusesHandler(cfg.StatusRepository),
	}

	logger.Debug("orders module initialized")

	return &module{handlers: handlers}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	httphandler.RegisterRoutes(mux, m.handlers)
}
