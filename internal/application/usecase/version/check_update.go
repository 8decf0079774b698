// Package version contains the release-notes use cases.
package version

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/domain/entity"
)

// CheckUpdateOutput represents the version check result.
type CheckUpdateOutput struct {
	Info      entity.AppVersionInfo
	ShowNotes bool
}

// CheckUpdateUseCase compares the released version against the last version
// whose notes the user dismissed.
type CheckUpdateUseCase struct {
	versionRepo adapter.VersionRepository
	released    entity.AppVersionInfo
}

// NewCheckUpdateUseCase creates a new CheckUpdateUseCase instance.
func NewCheckUpdateUseCase(versionRepo adapter.VersionRepository, released entity.AppVersionInfo) *CheckUpdateUseCase {
	return &CheckUpdateUseCase{
		versionRepo: versionRepo,
		released:    released,
	}
}

// Execute performs the version check.
func (uc *CheckUpdateUseCase) Execute(ctx context.Context, userID uuid.UUID) (*CheckUpdateOutput, error) {
	lastSeen, err := uc.versionRepo.LastSeenVersion(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load last seen version: %w", err)
	}

	return &CheckUpdateOutput{
		Info:      uc.released,
		ShowNotes: lastSeen != uc.released.LatestVersion,
	}, nil
}
