// Package usecase contains the lookup cycle of the application.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/ghlookup/internal/adapter/github"
	"github.com/yourusername/ghlookup/internal/domain"
	"github.com/yourusername/ghlookup/internal/logging"
)

// RenderDelay is the fixed pause between a successful response and rendering.
const RenderDelay = 1000 * time.Millisecond

// LookupUseCase resolves operator input, fetches the record and interprets it.
type LookupUseCase struct {
	fetcher     github.Fetcher
	loc         *time.Location
	renderDelay time.Duration
}

// NewLookupUseCase creates a new LookupUseCase. Dates render in loc.
func NewLookupUseCase(fetcher github.Fetcher, loc *time.Location) *LookupUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &LookupUseCase{
		fetcher:     fetcher,
		loc:         loc,
		renderDelay: RenderDelay,
	}
}

// LookupRequest contains the parameters of one lookup cycle.
type LookupRequest struct {
	Mode  domain.Mode
	Input string
}

// LookupResponse contains the outcome of a successful cycle.
type LookupResponse struct {
	CycleID string
	Target  domain.Target
	Result  *domain.LookupResult
}

// NewCycleID returns an identifier used to correlate the log lines of a cycle.
func NewCycleID() string {
	return uuid.NewString()
}

// RenderDelay returns the pause applied before a response is interpreted.
func (uc *LookupUseCase) RenderDelay() time.Duration {
	return uc.renderDelay
}

// Resolve validates raw input for mode and returns the lookup target.
func (uc *LookupUseCase) Resolve(mode domain.Mode, raw string) (domain.Target, error) {
	return domain.Resolve(mode, raw)
}

// Fetch issues the single GET for target.
func (uc *LookupUseCase) Fetch(ctx context.Context, target domain.Target) (*domain.Record, error) {
	if target.Mode.TargetsRepository() {
		return uc.fetcher.FetchRepository(ctx, target.Identifier)
	}
	return uc.fetcher.FetchAccount(ctx, target.Identifier)
}

// Interpret applies the field-presence check for mode and projects rec.
func (uc *LookupUseCase) Interpret(mode domain.Mode, rec *domain.Record) (*domain.LookupResult, error) {
	return domain.Interpret(mode, rec, uc.loc)
}

// Execute runs a full cycle: resolve, fetch, wait RenderDelay, interpret.
// The delay only ends early if ctx is done.
func (uc *LookupUseCase) Execute(ctx context.Context, req LookupRequest) (*LookupResponse, error) {
	cycleID := NewCycleID()
	logging.Info("lookup started", "cycle_id", cycleID, "mode", req.Mode)

	target, err := uc.Resolve(req.Mode, req.Input)
	if err != nil {
		logging.Info("lookup rejected", "cycle_id", cycleID, "error", err)
		return nil, err
	}

	rec, err := uc.Fetch(ctx, target)
	if err != nil {
		logging.Warn("lookup fetch failed", "cycle_id", cycleID, "target", target.Identifier, "error", err)
		return nil, err
	}

	timer := time.NewTimer(uc.renderDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, &domain.FetchError{Op: "wait render delay", Err: ctx.Err()}
	}

	result, err := uc.Interpret(req.Mode, rec)
	if err != nil {
		logging.Info("lookup response rejected", "cycle_id", cycleID, "target", target.Identifier, "error", err)
		return nil, err
	}

	logging.Info("lookup rendered", "cycle_id", cycleID, "target", target.Identifier)
	return &LookupResponse{
		CycleID: cycleID,
		Target:  target,
		Result:  result,
	}, nil
}

// String implements fmt.Stringer for log output.
func (r *LookupResponse) String() string {
	return fmt.Sprintf("%s %s", r.Target.Mode, r.Target.Identifier)
}
