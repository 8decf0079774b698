// Package entity defines the core business entities for the domain layer.
package entity

// AppVersionInfo describes the released application version and its notes.
type AppVersionInfo struct {
	CurrentVersion string
	LatestVersion  string
	ReleaseNotes   []string
	IsMandatory    bool
}
