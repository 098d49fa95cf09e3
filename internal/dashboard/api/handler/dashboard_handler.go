package handler

import (
	"VCS_Image_Dashboard/internal/dashboard/api/dto/request"
	"VCS_Image_Dashboard/internal/dashboard/api/dto/response"
	apperrors "VCS_Image_Dashboard/internal/dashboard/errors"
	"VCS_Image_Dashboard/internal/dashboard/model"
	"VCS_Image_Dashboard/internal/dashboard/service"
	"VCS_Image_Dashboard/internal/dashboard/view"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type DashboardHandler interface {
	Dashboard() gin.HandlerFunc
	ClearFilters() gin.HandlerFunc
	ListServers() gin.HandlerFunc
	GetServer() gin.HandlerFunc
	GetServerStatus() gin.HandlerFunc
	GetServerDetail() gin.HandlerFunc
	ExportServers() gin.HandlerFunc
	GetVersion() gin.HandlerFunc
}

type dashboardHandler struct {
	logger           Logger
	dashboardService service.DashboardService
}

func (*dashboardHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// bindViewState reads the dashboard query, writing a 400 response and returning false when it is invalid.
func (d *dashboardHandler) bindViewState(c *gin.Context) (service.ViewState, request.DashboardQuery, bool) {
	var req request.DashboardQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: d.formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid query parameters",
			})
		}
		return service.ViewState{}, req, false
	}
	viewState := service.ViewState{
		Search:   req.Search,
		Status:   req.Status,
		Category: req.Category,
		ViewMode: service.ViewMode(req.ViewMode),
	}.WithDefaults()
	return viewState, req, true
}

// handleServiceError maps service failures to responses. A cancelled request gets no response.
func (d *dashboardHandler) handleServiceError(c *gin.Context, err error, errDescription string) {
	var httpErr *apperrors.HttpError
	var netErr *apperrors.NetworkError
	switch {
	case errors.Is(err, context.Canceled):
		c.Abort()
	case errors.Is(err, apperrors.ErrServerNotFound):
		c.JSON(http.StatusNotFound, response.Response{
			Message: "Server not found",
		})
	case errors.As(err, &httpErr), errors.As(err, &netErr):
		d.logger.LoggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusBadGateway, response.Response{
			Message: "Inventory API unavailable",
		})
	default:
		d.logger.LoggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
	}
}

func (d *dashboardHandler) Dashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewState, req, ok := d.bindViewState(c)
		if !ok {
			return
		}
		dashboard, err := d.dashboardService.GetDashboard(c.Request.Context(), viewState)
		if err != nil {
			d.handleServiceError(c, fmt.Errorf("DashboardHandler.Dashboard: %w", err), "failed to render dashboard")
			return
		}
		page := view.NewPage(dashboard, d.dashboardService.GetVersion(), req.Modal == "version")
		c.HTML(http.StatusOK, view.PageTemplate, page)
	}
}

func (d *dashboardHandler) ClearFilters() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewState, _, ok := d.bindViewState(c)
		if !ok {
			return
		}
		c.Redirect(http.StatusFound, view.PageURL(viewState.Clear(), false))
	}
}

func (d *dashboardHandler) ListServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewState, _, ok := d.bindViewState(c)
		if !ok {
			return
		}
		dashboard, err := d.dashboardService.GetDashboard(c.Request.Context(), viewState)
		if err != nil {
			d.handleServiceError(c, fmt.Errorf("DashboardHandler.ListServers: %w", err), "failed to list servers")
			return
		}
		serversRes := make([]response.ServerInfoResponse, 0, len(dashboard.Servers))
		for _, server := range dashboard.Servers {
			serversRes = append(serversRes, response.NewServerInfoResponse(server))
		}
		c.JSON(http.StatusOK, response.ServerListResponse{
			State:    string(dashboard.State),
			Warning:  dashboard.Warning,
			Total:    dashboard.Total,
			Count:    len(serversRes),
			Servers:  serversRes,
			Search:   dashboard.ViewState.Search,
			Status:   dashboard.ViewState.Status,
			Category: dashboard.ViewState.Category,
		})
	}
}

func (d *dashboardHandler) GetServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		server, err := d.dashboardService.GetServer(c.Request.Context(), id)
		if err != nil {
			d.handleServiceError(c, fmt.Errorf("DashboardHandler.GetServer: %w", err), fmt.Sprintf("failed to get server %s", id))
			return
		}
		c.JSON(http.StatusOK, response.NewServerInfoResponse(server))
	}
}

func (d *dashboardHandler) GetServerStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		status, err := d.dashboardService.GetServerStatus(c.Request.Context(), id)
		if err != nil {
			d.handleServiceError(c, fmt.Errorf("DashboardHandler.GetServerStatus: %w", err), fmt.Sprintf("failed to get status of server %s", id))
			return
		}
		c.JSON(http.StatusOK, response.ServerStatusResponse{
			Status: status,
		})
	}
}

func (d *dashboardHandler) GetServerDetail() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		detail, err := d.dashboardService.GetServerDetail(c.Request.Context(), id)
		if err != nil {
			d.handleServiceError(c, fmt.Errorf("DashboardHandler.GetServerDetail: %w", err), fmt.Sprintf("failed to get detail of server %s", id))
			return
		}
		c.JSON(http.StatusOK, response.ServerDetailResponse{
			Server:     response.NewServerInfoResponse(detail.Server),
			LiveStatus: detail.Status,
		})
	}
}

func (d *dashboardHandler) ExportServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewState, _, ok := d.bindViewState(c)
		if !ok {
			return
		}
		dashboard, err := d.dashboardService.GetDashboard(c.Request.Context(), viewState)
		if err != nil {
			d.handleServiceError(c, fmt.Errorf("DashboardHandler.ExportServers: %w", err), "failed to export servers")
			return
		}
		file, err := generateExcelFile(dashboard.Servers)
		if err != nil {
			d.handleServiceError(c, fmt.Errorf("DashboardHandler.ExportServers: %w", err), "failed to export servers")
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("servers-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if dashboard.Warning != "" {
			c.Header("X-Inventory-Warning", dashboard.Warning)
		}
		c.Status(http.StatusOK)
		if err = file.Write(c.Writer); err != nil {
			d.logger.LoggingError(c, fmt.Errorf("DashboardHandler.ExportServers: %w", err), "failed to write export", zap.ErrorLevel)
		}
	}
}

const exportSheetName = "Servers"

func generateExcelFile(servers []model.ServerRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		f.Close()
		return nil, err
	}
	headers := []interface{}{"id", "customer", "image_name", "version", "server_address", "responsible", "category", "status"}
	if err := f.SetSheetRow(exportSheetName, "A1", &headers); err != nil {
		f.Close()
		return nil, err
	}
	for i, server := range servers {
		rowData := []interface{}{
			server.ID,
			server.Customer,
			server.ImageName,
			server.Version,
			server.ServerAddress,
			server.Responsible,
			string(server.NormalizedCategory()),
			string(server.NormalizedStatus()),
		}
		if err := f.SetSheetRow(exportSheetName, fmt.Sprintf("A%d", i+2), &rowData); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func (d *dashboardHandler) GetVersion() gin.HandlerFunc {
	return func(c *gin.Context) {
		v := d.dashboardService.GetVersion()
		c.JSON(http.StatusOK, response.VersionResponse{
			GitHash:      v.GitHash,
			CommitDate:   v.CommitDate,
			CommitAuthor: v.CommitAuthor,
			Version:      v.Version,
		})
	}
}

func NewDashboardHandler(logger Logger, dashboardService service.DashboardService) DashboardHandler {
	return &dashboardHandler{
		logger:           logger,
		dashboardService: dashboardService,
	}
}
