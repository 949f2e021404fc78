// Package http provides HTTP handlers for the orders module.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/application/commands"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/application/queries"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// Handlers bundles the use case handlers the HTTP layer dispatches to.
type Handlers struct {
	CreateOrderPart      *commands.CreateOrderPartHandler
	ApprovePendingOrder  *commands.ApprovePendingOrderHandler
	ApproveOfficeOrder   *commands.ApproveOfficeOrderHandler
	DenyOrderPart        *commands.DenyOrderPartHandler
	ChangeQuantity       *commands.ChangeQuantityHandler
	RecordQuotation      *commands.RecordQuotationHandler
	ApproveBudget        *commands.ApproveBudgetHandler
	MarkPurchased        *commands.MarkPurchasedHandler
	MarkSentToFactory    *commands.MarkSentToFactoryHandler
	MarkReceived         *commands.MarkReceivedByFactoryHandler
	MarkSampleReceived   *commands.MarkSampleReceivedHandler
	UpdateOfficeNote     *commands.UpdateOfficeNoteHandler
	ApproveStorageWithdr *commands.ApproveStorageWithdrawalHandler
	GetOrderPart         *queries.GetOrderPartHandler
	GetStatusTimeline    *queries.GetStatusTimelineHandler
	ListOrderParts       *queries.ListOrderPartsHandler
	ListLinkedOrders     *queries.ListLinkedOrdersHandler
	GetLastPurchase      *queries.GetLastPurchaseHandler
	ListStatuses         *queries.ListStatusesHandler
}

type handler struct {
	h Handlers
}

// RegisterRoutes registers the orders module routes to the given mux.
func RegisterRoutes(mux *http.ServeMux, handlers Handlers) {
	h := &handler{h: handlers}

	mux.HandleFunc("GET /statuses", h.handleListStatuses)

	mux.HandleFunc("POST /order-parts", h.handleCreateOrderPart)
	mux.HandleFunc("GET /order-parts/{id}", h.handleGetOrderPart)
	mux.HandleFunc("GET /order-parts/{id}/timeline", h.handleGetStatusTimeline)
	mux.HandleFunc("DELETE /order-parts/{id}", h.handleDenyOrderPart)

	mux.HandleFunc("POST /order-parts/{id}/approve-pending-order", h.handleApprovePendingOrder)
	mux.HandleFunc("POST /order-parts/{id}/approve-office-order", h.handleApproveOfficeOrder)
	mux.HandleFunc("POST /order-parts/{id}/quotation", h.handleRecordQuotation)
	mux.HandleFunc("POST /order-parts/{id}/approve-budget", h.handleApproveBudget)
	mux.HandleFunc("POST /order-parts/{id}/purchase", h.handleMarkPurchased)
	mux.HandleFunc("POST /order-parts/{id}/send-to-factory", h.handleMarkSentToFactory)
	mux.HandleFunc("POST /order-parts/{id}/receive", h.handleMarkReceived)
	mux.HandleFunc("POST /order-parts/{id}/sample-received", h.handleMarkSampleReceived)
	mux.HandleFunc("POST /order-parts/{id}/approve-storage-withdrawal", h.handleApproveStorageWithdrawal)
	mux.HandleFunc("PATCH /order-parts/{id}/quantity", h.handleChangeQuantity)
	mux.HandleFunc("PATCH /order-parts/{id}/office-note", h.handleUpdateOfficeNote)

	mux.HandleFunc("GET /orders/{orderId}/parts", h.handleListOrderParts)
	mux.HandleFunc("GET /parts/{partId}/order-parts", h.handleListLinkedOrders)
	mux.HandleFunc("GET /parts/{partId}/last-purchase", h.handleGetLastPurchase)
}

// Request/Response DTOs

type createOrderPartRequest struct {
	OrderID            string  `json:"order_id"`
	PartID             string  `json:"part_id"`
	Quantity           int     `json:"qty"`
	SampleSentToOffice bool    `json:"is_sample_sent_to_office"`
	Note               *string `json:"note"`
	InStorage          bool    `json:"in_storage"`
}

type createOrderPartResponse struct {
	ID string `json:"id"`
}

type quotationRequest struct {
	Vendor   string  `json:"vendor"`
	Brand    *string `json:"brand"`
	UnitCost float64 `json:"unit_cost"`
}

type dateRequest struct {
	Date *time.Time `json:"date"`
}

type quantityRequest struct {
	Quantity int `json:"qty"`
}

type officeNoteRequest struct {
	Note string `json:"office_note"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers

func (h *handler) handleListStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.h.ListStatuses.Handle(r.Context(), queries.ListStatusesQuery{})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

func (h *handler) handleCreateOrderPart(w http.ResponseWriter, r *http.Request) {
	var req createOrderPartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.CreateOrderPartCommand{
		OrderID:            req.OrderID,
		PartID:             req.PartID,
		Quantity:           req.Quantity,
		SampleSentToOffice: req.SampleSentToOffice,
		Note:               req.Note,
		InStorage:          req.InStorage,
	}
	id, err := h.h.CreateOrderPart.Handle(r.Context(), cmd)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createOrderPartResponse{ID: id})
}

func (h *handler) handleGetOrderPart(w http.ResponseWriter, r *http.Request) {
	part, err := h.h.GetOrderPart.Handle(r.Context(), queries.GetOrderPartQuery{OrderPartID: r.PathValue("id")})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

func (h *handler) handleGetStatusTimeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.h.GetStatusTimeline.Handle(r.Context(), queries.GetStatusTimelineQuery{OrderPartID: r.PathValue("id")})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, timeline)
}

func (h *handler) handleDenyOrderPart(w http.ResponseWriter, r *http.Request) {
	cmd := commands.DenyOrderPartCommand{OrderPartID: r.PathValue("id")}
	if err := h.h.DenyOrderPart.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleApprovePendingOrder(w http.ResponseWriter, r *http.Request) {
	cmd := commands.ApprovePendingOrderCommand{OrderPartID: r.PathValue("id")}
	if err := h.h.ApprovePendingOrder.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleApproveOfficeOrder(w http.ResponseWriter, r *http.Request) {
	cmd := commands.ApproveOfficeOrderCommand{OrderPartID: r.PathValue("id")}
	if err := h.h.ApproveOfficeOrder.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleRecordQuotation(w http.ResponseWriter, r *http.Request) {
	var req quotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.RecordQuotationCommand{
		OrderPartID: r.PathValue("id"),
		Vendor:      req.Vendor,
		Brand:       req.Brand,
		UnitCost:    req.UnitCost,
	}
	if err := h.h.RecordQuotation.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleApproveBudget(w http.ResponseWriter, r *http.Request) {
	cmd := commands.ApproveBudgetCommand{OrderPartID: r.PathValue("id")}
	if err := h.h.ApproveBudget.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeDate reads an optional {"date": ...} body. An empty body means "now".
func decodeDate(r *http.Request) (time.Time, error) {
	var req dateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	if req.Date == nil {
		return time.Time{}, nil
	}
	return *req.Date, nil
}

func (h *handler) handleMarkPurchased(w http.ResponseWriter, r *http.Request) {
	at, err := decodeDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.MarkPurchasedCommand{OrderPartID: r.PathValue("id"), PurchasedAt: at}
	if err := h.h.MarkPurchased.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleMarkSentToFactory(w http.ResponseWriter, r *http.Request) {
	at, err := decodeDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.MarkSentToFactoryCommand{OrderPartID: r.PathValue("id"), SentAt: at}
	if err := h.h.MarkSentToFactory.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleMarkReceived(w http.ResponseWriter, r *http.Request) {
	at, err := decodeDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.MarkReceivedByFactoryCommand{OrderPartID: r.PathValue("id"), ReceivedAt: at}
	if err := h.h.MarkReceived.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleMarkSampleReceived(w http.ResponseWriter, r *http.Request) {
	cmd := commands.MarkSampleReceivedCommand{OrderPartID: r.PathValue("id")}
	if err := h.h.MarkSampleReceived.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleApproveStorageWithdrawal(w http.ResponseWriter, r *http.Request) {
	cmd := commands.ApproveStorageWithdrawalCommand{OrderPartID: r.PathValue("id")}
	if err := h.h.ApproveStorageWithdr.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleChangeQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.ChangeQuantityCommand{OrderPartID: r.PathValue("id"), Quantity: req.Quantity}
	if err := h.h.ChangeQuantity.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleUpdateOfficeNote(w http.ResponseWriter, r *http.Request) {
	var req officeNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.UpdateOfficeNoteCommand{OrderPartID: r.PathValue("id"), Note: req.Note}
	if err := h.h.UpdateOfficeNote.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleListOrderParts(w http.ResponseWriter, r *http.Request) {
	result, err := h.h.ListOrderParts.Handle(r.Context(), queries.ListOrderPartsQuery{OrderID: r.PathValue("orderId")})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleListLinkedOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.h.ListLinkedOrders.Handle(r.Context(), queries.ListLinkedOrdersQuery{PartID: r.PathValue("partId")})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleGetLastPurchase(w http.ResponseWriter, r *http.Request) {
	record, err := h.h.GetLastPurchase.Handle(r.Context(), queries.GetLastPurchaseQuery{PartID: r.PathValue("partId")})
	if err != nil {
		handleError(w, err)
		return
	}
	if record == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Helper functions

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderPartNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrStageAlreadyComplete),
		errors.Is(err, domain.ErrStageOutOfOrder),
		errors.Is(err, domain.ErrWorkflowComplete),
		errors.Is(err, domain.ErrSampleNotSent),
		errors.Is(err, domain.ErrSampleAlreadyReceived):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrQuotationIncomplete),
		errors.Is(err, types.ErrInvalidID):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
