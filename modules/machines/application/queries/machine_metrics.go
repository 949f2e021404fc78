package queries

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
)

// MachineMetricsDTO carries the dashboard's running/not-running counts.
type MachineMetricsDTO struct {
	Running    int64 `json:"running"`
	NotRunning int64 `json:"not_running"`
}

// GetMachineMetricsQuery retrieves machine fleet metrics.
type GetMachineMetricsQuery struct{}

type GetMachineMetricsHandler struct {
	repo domain.MachineRepository
}

func NewGetMachineMetricsHandler(repo domain.MachineRepository) *GetMachineMetricsHandler {
	return &GetMachineMetricsHandler{repo: repo}
}

func (h *GetMachineMetricsHandler) Handle(ctx context.Context, _ GetMachineMetricsQuery) (*MachineMetricsDTO, error) {
	var running, notRunning int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		running, err = h.repo.CountByRunning(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		notRunning, err = h.repo.CountByRunning(gctx, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &MachineMetricsDTO{Running: running, NotRunning: notRunning}, nil
}
