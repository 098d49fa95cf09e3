package client

import (
	apperrors "VCS_Image_Dashboard/internal/dashboard/errors"
	"VCS_Image_Dashboard/internal/dashboard/metrics"
	"VCS_Image_Dashboard/internal/dashboard/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// InventoryClient reads the server inventory API. It never retries, callers decide what to do on failure.
type InventoryClient interface {
	ListServers(ctx context.Context) ([]model.ServerRecord, error)
	GetServer(ctx context.Context, id string) (model.ServerRecord, error)
	GetServerStatus(ctx context.Context, id string) (string, error)
}

type inventoryClient struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

type statusResponse struct {
	Status string `json:"status"`
}

func (i *inventoryClient) ListServers(ctx context.Context) ([]model.ServerRecord, error) {
	var servers []model.ServerRecord
	if err := i.get(ctx, "InventoryClient.ListServers", "/servers", &servers, false); err != nil {
		return nil, err
	}
	if servers == nil {
		servers = []model.ServerRecord{}
	}
	return servers, nil
}

func (i *inventoryClient) GetServer(ctx context.Context, id string) (model.ServerRecord, error) {
	var server model.ServerRecord
	if err := i.get(ctx, "InventoryClient.GetServer", "/servers/"+url.PathEscape(id), &server, true); err != nil {
		return model.ServerRecord{}, err
	}
	return server, nil
}

func (i *inventoryClient) GetServerStatus(ctx context.Context, id string) (string, error) {
	var res statusResponse
	if err := i.get(ctx, "InventoryClient.GetServerStatus", "/servers/"+url.PathEscape(id)+"/status", &res, true); err != nil {
		return "", err
	}
	return res.Status, nil
}

// get issues one GET request and decodes the JSON body into out. Every failure is
// logged here before it is returned, except when ctx ended first: the caller gave
// up on the call, so neither a log line nor a latency sample is recorded.
// With notFoundAsSentinel a 404 becomes apperrors.ErrServerNotFound.
func (i *inventoryClient) get(ctx context.Context, op string, path string, out interface{}, notFoundAsSentinel bool) error {
	requestUrl := i.baseURL + path
	start := time.Now()
	err := i.do(ctx, op, requestUrl, out, notFoundAsSentinel)
	if err != nil && ctx.Err() != nil {
		return err
	}
	result := "success"
	if err != nil {
		result = "error"
		i.logError(op, requestUrl, err)
	}
	metrics.InventoryRequestDuration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
	return err
}

func (i *inventoryClient) do(ctx context.Context, op string, requestUrl string, out interface{}, notFoundAsSentinel bool) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return fmt.Errorf("%s creating request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return apperrors.NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	if notFoundAsSentinel && resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, apperrors.ErrServerNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NewHttpError(op, resp.StatusCode)
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s decoding response: %w", op, err)
	}
	return nil
}

func (i *inventoryClient) logError(op string, requestUrl string, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", op),
		zap.String("url", requestUrl),
	}
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		fields = append(fields, zap.Int("status_code", httpErr.StatusCode))
	}
	i.logger.Error("inventory api error", fields...)
}

func NewInventoryClient(baseURL string, timeout time.Duration, logger *zap.Logger) InventoryClient {
	return &inventoryClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}
