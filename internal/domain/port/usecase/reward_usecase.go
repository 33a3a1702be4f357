package usecase

import (
	"context"
	"time"
)

// RewardOutcome distinguishes how a reward definition was obtained.
type RewardOutcome string

const (
	// RewardFound means the definition existed in the store
	RewardFound RewardOutcome = "found"
	// RewardAutoCreated means a default definition was provisioned and
	// persisted on first encounter
	RewardAutoCreated RewardOutcome = "auto_created"
	// RewardFallback means the store was unreachable and the documented
	// default was returned without persisting
	RewardFallback RewardOutcome = "fallback"
)

// ResolvedReward is the amount and display title granted for a trigger key.
type ResolvedReward struct {
	Amount  int64
	Title   string
	Outcome RewardOutcome
}

// TriggerEvent is an external event whose subject name may encode a reward
// to grant.
type TriggerEvent struct {
	SubjectName   string
	ParentGroupID string
	Timestamp     time.Time
}

// RewardUseCase resolves reward definitions and grants rewards in response
// to trigger events.
type RewardUseCase interface {
	// Resolve maps a trigger key to a reward amount and title. Callers
	// always receive a usable reward; store failures fall back to the
	// documented default.
	Resolve(ctx context.Context, triggerKey string) (*ResolvedReward, error)

	// HandleTriggerEvent runs the full grant flow for one trigger event:
	// group filter, dedup, pattern match, roster lookup, credit, notify.
	HandleTriggerEvent(ctx context.Context, event TriggerEvent) error
}
