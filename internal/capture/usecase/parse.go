package usecase

import (
	"context"
	"strings"

	"voicetask/internal/capture"
)

// Parse runs the rule pipeline on the utterance without storing anything.
func (uc *implUseCase) Parse(ctx context.Context, input capture.ParseInput) (capture.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return capture.ParseOutput{}, capture.ErrEmptyInput
	}

	ref := uc.referenceOrNow(input.ReferenceNow)
	actions := uc.parser.Parse(input.Text, ref)

	uc.l.Infof(ctx, "Parse: %d actions from utterance of %d bytes", len(actions), len(input.Text))
	return capture.ParseOutput{Actions: actions}, nil
}
