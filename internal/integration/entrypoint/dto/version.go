package dto

import (
	"github.com/motorista-real/backend/internal/application/usecase/version"
)

// DismissNotesRequest represents the request body for dismissing release notes.
type DismissNotesRequest struct {
	Version string `json:"version" binding:"required"`
}

// VersionResponse represents the version check result in API responses.
type VersionResponse struct {
	CurrentVersion string   `json:"current_version"`
	LatestVersion  string   `json:"latest_version"`
	ReleaseNotes   []string `json:"release_notes"`
	IsMandatory    bool     `json:"is_mandatory"`
	ShowNotes      bool     `json:"show_notes"`
}

// ToVersionResponse converts the use case output to the response DTO.
func ToVersionResponse(out *version.CheckUpdateOutput) VersionResponse {
	return VersionResponse{
		CurrentVersion: out.Info.CurrentVersion,
		LatestVersion:  out.Info.LatestVersion,
		ReleaseNotes:   out.Info.ReleaseNotes,
		IsMandatory:    out.Info.IsMandatory,
		ShowNotes:      out.ShowNotes,
	}
}
