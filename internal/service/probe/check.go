package probe

import (
	"context"
	"fmt"

	"github.com/oshokin/com-runtime/hresult"
	"github.com/oshokin/com-runtime/internal/logger"
)

// CheckOptions controls a status code classification.
type CheckOptions struct {
	// Code is the status code in decimal or 0x-prefixed hex.
	Code string
	// AllowFalse accepts S_FALSE as success.
	AllowFalse bool
}

// RunCheck parses and classifies a status code. A failing code is returned as
// an error wrapping hresult.Failure.
func RunCheck(ctx context.Context, opts *CheckOptions) error {
	ctx = logger.WithName(ctx, "check")

	code, err := hresult.Parse(opts.Code)
	if err != nil {
		return fmt.Errorf("parse status code: %w", err)
	}

	check := hresult.Check
	if opts.AllowFalse {
		check = hresult.CheckOKOrFalse
	}

	severity := "success"
	if code.Failed() {
		severity = "failure"
	}

	if err = check(code); err != nil {
		logger.WarnKV(ctx, "Status check failed", "code", code.String(), "severity", severity)

		return err
	}

	logger.InfoKV(ctx, "Status check passed", "code", code.String(), "severity", severity)

	return nil
}
