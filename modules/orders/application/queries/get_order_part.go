// Package queries contains read use cases for the orders module.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// OrderPartDTO is a read model for a single order part, including the stage
// derived from its milestone fields.
type OrderPartDTO struct {
	ID                        string     `json:"id"`
	OrderID                   string     `json:"order_id"`
	PartID                    string     `json:"part_id"`
	Quantity                  int        `json:"qty"`
	Vendor                    *string    `json:"vendor"`
	Brand                     *string    `json:"brand"`
	UnitCost                  *float64   `json:"unit_cost"`
	Note                      *string    `json:"note"`
	OfficeNote                *string    `json:"office_note"`
	InStorage                 bool       `json:"in_storage"`
	ApprovedStorageWithdrawal bool       `json:"approved_storage_withdrawal"`
	ApprovedPendingOrder      bool       `json:"approved_pending_order"`
	ApprovedOfficeOrder       bool       `json:"approved_office_order"`
	ApprovedBudget            bool       `json:"approved_budget"`
	SampleSentToOffice        bool       `json:"is_sample_sent_to_office"`
	SampleReceivedByOffice    bool       `json:"is_sample_received_by_office"`
	PurchasedDate             *time.Time `json:"part_purchased_date"`
	SentByOfficeDate          *time.Time `json:"part_sent_by_office_date"`
	ReceivedByFactoryDate     *time.Time `json:"part_received_by_factory_date"`
	CurrentStage              string     `json:"current_stage"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

// GetOrderPartQuery retrieves an order part by ID.
type GetOrderPartQuery struct {
	OrderPartID string
}

type GetOrderPartHandler struct {
	repo domain.OrderPartRepository
}

func NewGetOrderPartHandler(repo domain.OrderPartRepository) *GetOrderPartHandler {
	return &GetOrderPartHandler{repo: repo}
}

func (h *GetOrderPartHandler) Handle(ctx context.Context, query GetOrderPartQuery) (*OrderPartDTO, error) {
	id, err := types.ParseOrderPartID(query.OrderPartID)
	if err != nil {
		return nil, fmt.Errorf("invalid order part ID: %w", err)
	}

	part, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toOrderPartDTO(part), nil
}

func toOrderPartDTO(part *domain.OrderPart) *OrderPartDTO {
	return &OrderPartDTO{
		ID:                        part.ID().String(),
		OrderID:                   part.OrderID().String(),
		PartID:                    part.PartID().String(),
		Quantity:                  part.Quantity(),
		Vendor:                    part.Vendor(),
		Brand:                     part.Brand(),
		UnitCost:                  part.UnitCost(),
		Note:                      part.Note(),
		OfficeNote:                part.OfficeNote(),
		InStorage:                 part.InStorage(),
		ApprovedStorageWithdrawal: part.StorageWithdrawalApproved(),
		ApprovedPendingOrder:      part.PendingOrderApproved(),
		ApprovedOfficeOrder:       part.OfficeOrderApproved(),
		ApprovedBudget:            part.BudgetApproved(),
		SampleSentToOffice:        part.SampleSentToOffice(),
		SampleReceivedByOffice:    part.SampleReceivedByOffice(),
		PurchasedDate:             part.PurchasedDate(),
		SentByOfficeDate:          part.SentByOfficeDate(),
		ReceivedByFactoryDate:     part.ReceivedByFactoryDate(),
		CurrentStage:              part.CurrentStage().Name(),
		CreatedAt:                 part.CreatedAt(),
		UpdatedAt:                 part.UpdatedAt(),
	}
}
