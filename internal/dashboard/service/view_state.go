package service

import (
	"VCS_Image_Dashboard/internal/dashboard/model"
	"strings"
)

type ViewMode string

const (
	ViewModeCard ViewMode = "card"
	ViewModeList ViewMode = "list"
)

// ViewState holds everything the user can change on the list page. The filtered
// projection is always recomputed from (records, ViewState).
type ViewState struct {
	Search   string   `json:"search" form:"q"`
	Status   string   `json:"status" form:"status"`
	Category string   `json:"category" form:"category"`
	ViewMode ViewMode `json:"view_mode" form:"view"`
}

func DefaultViewState() ViewState {
	return ViewState{
		Status:   model.FilterAll,
		Category: model.FilterAll,
		ViewMode: ViewModeList,
	}
}

// WithDefaults fills unset fields with their default values.
func (v ViewState) WithDefaults() ViewState {
	if v.Status == "" {
		v.Status = model.FilterAll
	}
	if v.Category == "" {
		v.Category = model.FilterAll
	}
	if v.ViewMode == "" {
		v.ViewMode = ViewModeList
	}
	return v
}

// Clear resets search, status and category. The view mode is kept.
func (v ViewState) Clear() ViewState {
	return ViewState{
		Status:   model.FilterAll,
		Category: model.FilterAll,
		ViewMode: v.WithDefaults().ViewMode,
	}
}

func (v ViewState) HasActiveFilters() bool {
	v = v.WithDefaults()
	return v.Search != "" || v.Status != model.FilterAll || v.Category != model.FilterAll
}

// Filter returns the records matching every predicate of state, in their original order.
func Filter(records []model.ServerRecord, state ViewState) []model.ServerRecord {
	state = state.WithDefaults()
	search := strings.ToLower(state.Search)
	res := make([]model.ServerRecord, 0, len(records))
	for _, record := range records {
		if matchesSearch(record, search) && matchesStatus(record, state.Status) && matchesCategory(record, state.Category) {
			res = append(res, record)
		}
	}
	return res
}

func matchesSearch(record model.ServerRecord, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range []string{record.Customer, record.ImageName, record.ServerAddress, record.Responsible} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func matchesStatus(record model.ServerRecord, status string) bool {
	return status == model.FilterAll || string(record.NormalizedStatus()) == status
}

func matchesCategory(record model.ServerRecord, category string) bool {
	return category == model.FilterAll || string(record.Category) == category
}
