package media

import (
	"context"

	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/telemetry"
)

// Cleanup removes the given assets best-effort. Failures are logged and
// counted but never returned: the owning document's deletion must proceed
// regardless, accepting an orphaned remote asset as the lesser failure.
func Cleanup(ctx context.Context, store Store, assets ...Asset) {
	for _, asset := range assets {
		if asset.PublicID == "" {
			continue
		}
		kind := asset.Kind
		if kind == "" {
			kind = KindImage
		}
		if err := store.Remove(ctx, asset.PublicID, kind); err != nil {
			metrics.IncMediaRemovalFailure()
			telemetry.Error("media.cleanup_failed", map[string]any{
				"public_id": asset.PublicID,
				"kind":      string(kind),
				"error":     err.Error(),
			})
			continue
		}
		metrics.IncMediaRemoval()
	}
}
