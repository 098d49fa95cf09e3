package service

import (
	apperrors "VCS_Image_Dashboard/internal/dashboard/errors"
	mockclient "VCS_Image_Dashboard/internal/dashboard/mocks/client"
	"VCS_Image_Dashboard/internal/dashboard/model"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestServerListView_Load(t *testing.T) {
	testCases := []struct {
		name            string
		setupMocks      func(mockClient *mockclient.MockInventoryClient)
		expectedState   ListState
		expectedServers []model.ServerRecord
		expectedWarning string
	}{
		{
			name: "Success stores collection verbatim",
			setupMocks: func(mockClient *mockclient.MockInventoryClient) {
				mockClient.EXPECT().ListServers(gomock.Any()).Return(acmeGlobex, nil)
			},
			expectedState:   ListStateReady,
			expectedServers: acmeGlobex,
		},
		{
			name: "Success with empty collection",
			setupMocks: func(mockClient *mockclient.MockInventoryClient) {
				mockClient.EXPECT().ListServers(gomock.Any()).Return([]model.ServerRecord{}, nil)
			},
			expectedState:   ListStateReady,
			expectedServers: []model.ServerRecord{},
		},
		{
			name: "Network error falls back to demo data",
			setupMocks: func(mockClient *mockclient.MockInventoryClient) {
				mockClient.EXPECT().ListServers(gomock.Any()).Return(nil, apperrors.NewNetworkError("InventoryClient.ListServers", errors.New("connection refused")))
			},
			expectedState:   ListStateReadyWithFallback,
			expectedServers: FallbackServers(),
			expectedWarning: FallbackWarning,
		},
		{
			name: "Http error falls back to demo data",
			setupMocks: func(mockClient *mockclient.MockInventoryClient) {
				mockClient.EXPECT().ListServers(gomock.Any()).Return(nil, apperrors.NewHttpError("InventoryClient.ListServers", 503))
			},
			expectedState:   ListStateReadyWithFallback,
			expectedServers: FallbackServers(),
			expectedWarning: FallbackWarning,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mockclient.NewMockInventoryClient(ctrl)
			tc.setupMocks(mockClient)

			view := NewServerListView(mockClient, zap.NewNop())
			assert.Equal(t, ListStateLoading, view.Snapshot().State)

			require.NoError(t, view.Load(context.Background()))
			snapshot := view.Snapshot()
			assert.Equal(t, tc.expectedState, snapshot.State)
			assert.Equal(t, tc.expectedServers, snapshot.Servers)
			assert.Equal(t, tc.expectedWarning, snapshot.Warning)
			if snapshot.State == ListStateReadyWithFallback {
				assert.NotEmpty(t, snapshot.Servers)
				assert.NotEmpty(t, snapshot.Warning)
			}
		})
	}
}

func TestServerListView_LoadDiscardedAfterCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mockclient.NewMockInventoryClient(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	mockClient.EXPECT().ListServers(gomock.Any()).DoAndReturn(func(context.Context) ([]model.ServerRecord, error) {
		cancel()
		return acmeGlobex, nil
	})

	view := NewServerListView(mockClient, zap.NewNop())
	err := view.Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	snapshot := view.Snapshot()
	assert.Equal(t, ListStateLoading, snapshot.State)
	assert.Empty(t, snapshot.Servers)
	assert.Empty(t, snapshot.Warning)
}

func TestServerListView_SnapshotIsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mockclient.NewMockInventoryClient(ctrl)
	records := []model.ServerRecord{{ID: "1", Customer: "Acme"}}
	mockClient.EXPECT().ListServers(gomock.Any()).Return(records, nil)

	view := NewServerListView(mockClient, zap.NewNop())
	require.NoError(t, view.Load(context.Background()))

	snapshot := view.Snapshot()
	snapshot.Servers[0].Customer = "changed"
	assert.Equal(t, "Acme", view.Snapshot().Servers[0].Customer)
}
