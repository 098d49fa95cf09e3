package view

import (
	"VCS_Image_Dashboard/internal/dashboard/model"
	"VCS_Image_Dashboard/internal/dashboard/service"
	"net/url"
)

// ModalState is the version modal. While it is open the page body carries the scroll lock class.
type ModalState struct {
	Open bool
}

const scrollLockClass = "scroll-locked"

func (m ModalState) BodyClass() string {
	if m.Open {
		return scrollLockClass
	}
	return ""
}

// Row is one rendered server. VisitURL points at the address shown in the
// same row and is empty when that address is not a plain host or host:port.
type Row struct {
	Server   model.ServerRecord
	Status   Badge
	Category Badge
	VisitURL string
}

type Page struct {
	Dashboard        service.Dashboard
	Rows             []Row
	Version          model.VersionMetadata
	Modal            ModalState
	StatusOptions    []Option
	CategoryOptions  []Option
	CardViewURL      string
	ListViewURL      string
	ClearURL         string
	OpenModalURL     string
	CloseModalURL    string
	HasActiveFilters bool
}

func (p Page) IsCardView() bool {
	return p.Dashboard.ViewState.ViewMode == service.ViewModeCard
}

func (p Page) IsFallback() bool {
	return p.Dashboard.State == service.ListStateReadyWithFallback
}

func NewPage(dashboard service.Dashboard, version model.VersionMetadata, modalOpen bool) Page {
	state := dashboard.ViewState.WithDefaults()
	dashboard.ViewState = state
	rows := make([]Row, 0, len(dashboard.Servers))
	for _, s := range dashboard.Servers {
		visitURL, err := service.VisitURL(s.ServerAddress)
		if err != nil {
			visitURL = ""
		}
		rows = append(rows, Row{
			Server:   s,
			Status:   StatusBadge(s),
			Category: CategoryBadge(s),
			VisitURL: visitURL,
		})
	}

	cardState := state
	cardState.ViewMode = service.ViewModeCard
	listState := state
	listState.ViewMode = service.ViewModeList

	return Page{
		Dashboard:        dashboard,
		Rows:             rows,
		Version:          version,
		Modal:            ModalState{Open: modalOpen},
		StatusOptions:    statusOptions(state.Status),
		CategoryOptions:  categoryOptions(state.Category),
		CardViewURL:      PageURL(cardState, false),
		ListViewURL:      PageURL(listState, false),
		ClearURL:         PageURL(state.Clear(), false),
		OpenModalURL:     PageURL(state, true),
		CloseModalURL:    PageURL(state, false),
		HasActiveFilters: state.HasActiveFilters(),
	}
}

// PageURL encodes a view state as a dashboard link, leaving out default values.
func PageURL(state service.ViewState, modalOpen bool) string {
	state = state.WithDefaults()
	q := url.Values{}
	if state.Search != "" {
		q.Set("q", state.Search)
	}
	if state.Status != model.FilterAll {
		q.Set("status", state.Status)
	}
	if state.Category != model.FilterAll {
		q.Set("category", state.Category)
	}
	if state.ViewMode != service.ViewModeList {
		q.Set("view", string(state.ViewMode))
	}
	if modalOpen {
		q.Set("modal", "version")
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
