package response

import "VCS_Image_Dashboard/internal/dashboard/model"

type ServerInfoResponse struct {
	ID            string `json:"id"`
	Customer      string `json:"customer"`
	ImageName     string `json:"imageName"`
	Version       string `json:"version"`
	ServerAddress string `json:"serverAddress"`
	Responsible   string `json:"responsible"`
	Category      string `json:"category"`
	Status        string `json:"status"`
}

type ServerListResponse struct {
	State    string               `json:"state"`
	Warning  string               `json:"warning,omitempty"`
	Total    int                  `json:"total"`
	Count    int                  `json:"count"`
	Servers  []ServerInfoResponse `json:"servers"`
	Search   string               `json:"search"`
	Status   string               `json:"status"`
	Category string               `json:"category"`
}

type ServerStatusResponse struct {
	Status string `json:"status"`
}

type ServerDetailResponse struct {
	Server     ServerInfoResponse `json:"server"`
	LiveStatus string             `json:"liveStatus"`
}

type VersionResponse struct {
	GitHash      string `json:"gitHash"`
	CommitDate   string `json:"commitDate"`
	CommitAuthor string `json:"commitAuthor"`
	Version      string `json:"version"`
}

// NewServerInfoResponse renders absent category and status as "unknown".
func NewServerInfoResponse(s model.ServerRecord) ServerInfoResponse {
	return ServerInfoResponse{
		ID:            s.ID,
		Customer:      s.Customer,
		ImageName:     s.ImageName,
		Version:       s.Version,
		ServerAddress: s.ServerAddress,
		Responsible:   s.Responsible,
		Category:      string(s.NormalizedCategory()),
		Status:        string(s.NormalizedStatus()),
	}
}
