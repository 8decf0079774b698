package version

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/application/adapter"
)

// DismissNotesUseCase records that the user dismissed the release notes of
// a version, so they are not shown again.
type DismissNotesUseCase struct {
	versionRepo adapter.VersionRepository
}

// NewDismissNotesUseCase creates a new DismissNotesUseCase instance.
func NewDismissNotesUseCase(versionRepo adapter.VersionRepository) *DismissNotesUseCase {
	return &DismissNotesUseCase{versionRepo: versionRepo}
}

// Execute records the dismissal.
func (uc *DismissNotesUseCase) Execute(ctx context.Context, userID uuid.UUID, version string) error {
	if err := uc.versionRepo.SetLastSeenVersion(ctx, userID, version); err != nil {
		return fmt.Errorf("failed to record dismissed version: %w", err)
	}
	return nil
}
