package usecase

import (
	"context"

	"voicetask/internal/capture"
	"voicetask/internal/model"
)

// Recent returns the records still held in the recent-capture cache,
// newest first.
func (uc *implUseCase) Recent(ctx context.Context) (capture.RecentOutput, error) {
	values := uc.recent.Values() // oldest to newest

	records := make([]model.CaptureRecord, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		records = append(records, values[i])
	}

	return capture.RecentOutput{Records: records}, nil
}
