package service

import (
	"VCS_Image_Dashboard/internal/dashboard/client"
	"VCS_Image_Dashboard/internal/dashboard/metrics"
	"VCS_Image_Dashboard/internal/dashboard/model"
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type ListState string

const (
	ListStateLoading           ListState = "loading"
	ListStateReady             ListState = "ready"
	ListStateReadyWithFallback ListState = "ready-with-fallback"
)

type ListSnapshot struct {
	State   ListState
	Servers []model.ServerRecord
	Warning string
}

// ServerListView owns the inventory snapshot of a single page view.
type ServerListView struct {
	client client.InventoryClient
	logger *zap.Logger

	mu      sync.Mutex
	state   ListState
	servers []model.ServerRecord
	warning string
}

// Load fetches the inventory once. A failed fetch switches to the demo dataset
// and sets a warning, it is never retried. When ctx ends before the fetch
// returns, the result is discarded and ctx.Err() is returned.
func (v *ServerListView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.state = ListStateLoading
	v.mu.Unlock()

	servers, err := v.client.ListServers(ctx)
	if ctx.Err() != nil {
		v.logger.Debug("page view ended before inventory arrived, discarding result", zap.Error(ctx.Err()))
		return fmt.Errorf("ServerListView.Load: %w", ctx.Err())
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.logger.Warn("failed to fetch server list, using demo data", zap.Error(err))
		metrics.InventoryLoads.WithLabelValues("fallback").Inc()
		v.state = ListStateReadyWithFallback
		v.servers = FallbackServers()
		v.warning = FallbackWarning
		return nil
	}
	metrics.InventoryLoads.WithLabelValues("success").Inc()
	v.state = ListStateReady
	v.servers = servers
	v.warning = ""
	return nil
}

func (v *ServerListView) Snapshot() ListSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	servers := make([]model.ServerRecord, len(v.servers))
	copy(servers, v.servers)
	return ListSnapshot{
		State:   v.state,
		Servers: servers,
		Warning: v.warning,
	}
}

func NewServerListView(client client.InventoryClient, logger *zap.Logger) *ServerListView {
	return &ServerListView{
		client:  client,
		logger:  logger,
		state:   ListStateLoading,
		servers: []model.ServerRecord{},
	}
}
