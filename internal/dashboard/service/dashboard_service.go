package service

import (
	"VCS_Image_Dashboard/internal/dashboard/client"
	apperrors "VCS_Image_Dashboard/internal/dashboard/errors"
	"VCS_Image_Dashboard/internal/dashboard/model"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, viewState ViewState) (Dashboard, error)
	GetServer(ctx context.Context, id string) (model.ServerRecord, error)
	GetServerStatus(ctx context.Context, id string) (string, error)
	GetServerDetail(ctx context.Context, id string) (ServerDetail, error)
	GetVersion() model.VersionMetadata
}

// Dashboard is the filtered projection of one inventory snapshot.
type Dashboard struct {
	State     ListState
	ViewState ViewState
	Servers   []model.ServerRecord
	Total     int
	Warning   string
}

type ServerDetail struct {
	Server model.ServerRecord
	Status string
}

type dashboardService struct {
	client  client.InventoryClient
	logger  *zap.Logger
	version model.VersionMetadata
}

func (d *dashboardService) GetDashboard(ctx context.Context, viewState ViewState) (Dashboard, error) {
	view := NewServerListView(d.client, d.logger)
	if err := view.Load(ctx); err != nil {
		return Dashboard{}, fmt.Errorf("DashboardService.GetDashboard: %w", err)
	}
	snapshot := view.Snapshot()
	viewState = viewState.WithDefaults()
	return Dashboard{
		State:     snapshot.State,
		ViewState: viewState,
		Servers:   Filter(snapshot.Servers, viewState),
		Total:     len(snapshot.Servers),
		Warning:   snapshot.Warning,
	}, nil
}

func (d *dashboardService) GetServer(ctx context.Context, id string) (model.ServerRecord, error) {
	server, err := d.client.GetServer(ctx, id)
	if err != nil {
		return model.ServerRecord{}, fmt.Errorf("DashboardService.GetServer: %w", err)
	}
	return server, nil
}

func (d *dashboardService) GetServerStatus(ctx context.Context, id string) (string, error) {
	status, err := d.client.GetServerStatus(ctx, id)
	if err != nil {
		return "", fmt.Errorf("DashboardService.GetServerStatus: %w", err)
	}
	return status, nil
}

// GetServerDetail fetches the record and its live status concurrently.
func (d *dashboardService) GetServerDetail(ctx context.Context, id string) (ServerDetail, error) {
	var detail ServerDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		server, err := d.client.GetServer(gctx, id)
		detail.Server = server
		return err
	})
	g.Go(func() error {
		status, err := d.client.GetServerStatus(gctx, id)
		detail.Status = status
		return err
	})
	if err := g.Wait(); err != nil {
		return ServerDetail{}, fmt.Errorf("DashboardService.GetServerDetail: %w", err)
	}
	return detail, nil
}

func (d *dashboardService) GetVersion() model.VersionMetadata {
	return d.version
}

// VisitURL builds http://{address}. The address must be a bare host or host:port.
func VisitURL(address string) (string, error) {
	if address == "" || strings.ContainsAny(address, "/\\?#@ \t\r\n") {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidAddress, address)
	}
	u, err := url.Parse("http://" + address)
	if err != nil || u.Host != address || u.Hostname() == "" {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidAddress, address)
	}
	if port := u.Port(); port != "" {
		if n, e := strconv.Atoi(port); e != nil || n < 1 || n > 65535 {
			return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidAddress, address)
		}
	}
	return u.String(), nil
}

func NewDashboardService(client client.InventoryClient, logger *zap.Logger, version model.VersionMetadata) DashboardService {
	return &dashboardService{
		client:  client,
		logger:  logger,
		version: version,
	}
}
