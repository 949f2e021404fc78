// Package http provides HTTP handlers for the machines module.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/application/commands"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/application/queries"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

type Handler struct {
	setRunning   *commands.SetMachineRunningHandler
	upsertPart   *commands.UpsertMachinePartHandler
	addPartQty   *commands.AddMachinePartQtyHandler
	getMachine   *queries.GetMachineHandler
	listMachines *queries.ListMachinesHandler
	getMetrics   *queries.GetMachineMetricsHandler
	listParts    *queries.ListMachinePartsHandler
}

// RegisterRoutes registers the machines module routes to the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	setRunning *commands.SetMachineRunningHandler,
	upsertPart *commands.UpsertMachinePartHandler,
	addPartQty *commands.AddMachinePartQtyHandler,
	getMachine *queries.GetMachineHandler,
	listMachines *queries.ListMachinesHandler,
	getMetrics *queries.GetMachineMetricsHandler,
	listParts *queries.ListMachinePartsHandler,
) {
	h := &Handler{
		setRunning:   setRunning,
		upsertPart:   upsertPart,
		addPartQty:   addPartQty,
		getMachine:   getMachine,
		listMachines: listMachines,
		getMetrics:   getMetrics,
		listParts:    listParts,
	}

	mux.HandleFunc("GET /machines", h.handleListMachines)
	mux.HandleFunc("GET /machines/metrics", h.handleGetMetrics)
	mux.HandleFunc("GET /machines/{id}", h.handleGetMachine)
	mux.HandleFunc("PATCH /machines/{id}/running", h.handleSetRunning)
	mux.HandleFunc("GET /machine-parts", h.handleListParts)
	mux.HandleFunc("PUT /machines/{id}/parts/{partId}", h.handleUpsertPart)
	mux.HandleFunc("POST /machines/{id}/parts/{partId}/add", h.handleAddPartQty)
}

// Request/Response DTOs

type setRunningRequest struct {
	Running bool `json:"is_running"`
}

type machinePartRequest struct {
	PartName string `json:"part_name"`
	Quantity int    `json:"qty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers

func (h *Handler) handleListMachines(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	query := queries.ListMachinesQuery{Page: page, Limit: limit}
	if raw := r.URL.Query().Get("factory_section_id"); raw != "" {
		sectionID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid factory_section_id")
			return
		}
		query.FactorySectionID = &sectionID
	}
	switch r.URL.Query().Get("sort") {
	case "asc":
		query.RunningSort = domain.SortAsc
	case "desc":
		query.RunningSort = domain.SortDesc
	}

	result, err := h.listMachines.Handle(r.Context(), query)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGetMachine(w http.ResponseWriter, r *http.Request) {
	machine, err := h.getMachine.Handle(r.Context(), queries.GetMachineQuery{MachineID: r.PathValue("id")})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, machine)
}

func (h *Handler) handleGetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.getMetrics.Handle(r.Context(), queries.GetMachineMetricsQuery{})
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (h *Handler) handleSetRunning(w http.ResponseWriter, r *http.Request) {
	var req setRunningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.SetMachineRunningCommand{MachineID: r.PathValue("id"), Running: req.Running}
	if err := h.setRunning.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListParts(w http.ResponseWriter, r *http.Request) {
	query := queries.ListMachinePartsQuery{PartName: r.URL.Query().Get("part_name")}
	if raw := r.URL.Query().Get("machine_id"); raw != "" {
		query.MachineID = &raw
	}
	if raw := r.URL.Query().Get("part_id"); raw != "" {
		query.PartID = &raw
	}

	parts, err := h.listParts.Handle(r.Context(), query)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, parts)
}

func (h *Handler) handleUpsertPart(w http.ResponseWriter, r *http.Request) {
	var req machinePartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.UpsertMachinePartCommand{
		MachineID: r.PathValue("id"),
		PartID:    r.PathValue("partId"),
		PartName:  req.PartName,
		Quantity:  req.Quantity,
	}
	if err := h.upsertPart.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAddPartQty(w http.ResponseWriter, r *http.Request) {
	var req machinePartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.AddMachinePartQtyCommand{
		MachineID: r.PathValue("id"),
		PartID:    r.PathValue("partId"),
		PartName:  req.PartName,
		Delta:     req.Quantity,
	}
	if err := h.addPartQty.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Helper functions

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMachineNotFound),
		errors.Is(err, domain.ErrMachinePartNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrMachineNameRequired),
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
