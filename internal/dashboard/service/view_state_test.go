package service

import (
	"VCS_Image_Dashboard/internal/dashboard/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

var acmeGlobex = []model.ServerRecord{
	{ID: "1", Customer: "Acme", ImageName: "nginx", ServerAddress: "10.0.0.1", Responsible: "Ann", Status: model.StatusRunning, Category: model.CategoryProduction},
	{ID: "2", Customer: "Globex", ImageName: "postgres", ServerAddress: "10.0.0.2", Responsible: "Bob", Status: model.StatusStopped, Category: model.CategoryTesting},
}

func ids(records []model.ServerRecord) []string {
	res := make([]string, 0, len(records))
	for _, r := range records {
		res = append(res, r.ID)
	}
	return res
}

func TestFilter(t *testing.T) {
	withAbsentStatus := append([]model.ServerRecord{}, acmeGlobex...)
	withAbsentStatus = append(withAbsentStatus, model.ServerRecord{ID: "3", Customer: "Initech", ImageName: "redis", Category: "qa"})

	testCases := []struct {
		name        string
		records     []model.ServerRecord
		state       ViewState
		expectedIDs []string
	}{
		{
			name:        "Search matches customer case-insensitively",
			records:     acmeGlobex,
			state:       ViewState{Search: "acme", Status: model.FilterAll, Category: model.FilterAll},
			expectedIDs: []string{"1"},
		},
		{
			name:        "Upper case search matches lower case image name",
			records:     acmeGlobex,
			state:       ViewState{Search: "NGINX"},
			expectedIDs: []string{"1"},
		},
		{
			name:        "Search matches address",
			records:     acmeGlobex,
			state:       ViewState{Search: "10.0.0.2"},
			expectedIDs: []string{"2"},
		},
		{
			name:        "Search matches responsible",
			records:     acmeGlobex,
			state:       ViewState{Search: "bo"},
			expectedIDs: []string{"2"},
		},
		{
			name:        "Search does not look at version",
			records:     []model.ServerRecord{{ID: "1", Customer: "Acme", Version: "1.21.0"}},
			state:       ViewState{Search: "1.21"},
			expectedIDs: []string{},
		},
		{
			name:        "Status filter",
			records:     acmeGlobex,
			state:       ViewState{Status: string(model.StatusStopped), Category: model.FilterAll},
			expectedIDs: []string{"2"},
		},
		{
			name:        "Category filter",
			records:     acmeGlobex,
			state:       ViewState{Category: string(model.CategoryProduction)},
			expectedIDs: []string{"1"},
		},
		{
			name:        "All filters combined with no match",
			records:     acmeGlobex,
			state:       ViewState{Search: "acme", Status: string(model.StatusStopped)},
			expectedIDs: []string{},
		},
		{
			name:        "Empty state returns everything in order",
			records:     acmeGlobex,
			state:       DefaultViewState(),
			expectedIDs: []string{"1", "2"},
		},
		{
			name:        "Absent status matches unknown",
			records:     withAbsentStatus,
			state:       ViewState{Status: string(model.StatusUnknown)},
			expectedIDs: []string{"3"},
		},
		{
			name:        "Empty collection",
			records:     nil,
			state:       DefaultViewState(),
			expectedIDs: []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedIDs, ids(Filter(tc.records, tc.state)))
		})
	}
}

func TestFilter_DroppingAFilterNeverShrinksResult(t *testing.T) {
	records := FallbackServers()
	states := []ViewState{
		{Search: "a", Status: string(model.StatusRunning), Category: string(model.CategoryProduction)},
		{Search: "192.168.1.10", Status: string(model.StatusError), Category: string(model.CategoryProduction)},
		{Search: "zz", Status: string(model.StatusStopped), Category: string(model.CategoryTesting)},
		{Search: "", Status: string(model.StatusRunning), Category: string(model.CategoryDevelopment)},
	}
	for _, state := range states {
		full := len(Filter(records, state))

		noSearch := state
		noSearch.Search = ""
		noStatus := state
		noStatus.Status = model.FilterAll
		noCategory := state
		noCategory.Category = model.FilterAll

		assert.GreaterOrEqual(t, len(Filter(records, noSearch)), full)
		assert.GreaterOrEqual(t, len(Filter(records, noStatus)), full)
		assert.GreaterOrEqual(t, len(Filter(records, noCategory)), full)
	}
}

func TestViewState_ClearAndActiveFilters(t *testing.T) {
	state := ViewState{Search: "acme", Status: "running", Category: "testing", ViewMode: ViewModeCard}
	assert.True(t, state.HasActiveFilters())

	cleared := state.Clear()
	assert.Equal(t, ViewState{Status: model.FilterAll, Category: model.FilterAll, ViewMode: ViewModeCard}, cleared)
	assert.False(t, cleared.HasActiveFilters())

	assert.False(t, ViewState{}.HasActiveFilters())
	assert.True(t, ViewState{Category: "staging"}.HasActiveFilters())
	assert.Equal(t, ViewModeList, ViewState{}.Clear().ViewMode)
}

func TestFallbackServers_ReturnsCopy(t *testing.T) {
	first := FallbackServers()
	first[0].Customer = "changed"
	second := FallbackServers()
	assert.Len(t, second, 8)
	assert.Equal(t, "Alibaba", second[0].Customer)
}
