package reward

import (
	"context"
	"errors"
	"fmt"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/persistence"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
)

// DefaultRewardAmount is granted whenever a reward definition is missing
// or unreachable.
const DefaultRewardAmount = 100

// Resolver maps trigger keys to reward definitions, auto-provisioning a
// default on first encounter.
type Resolver struct {
	questRepo     persistence.QuestRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	defaultAmount int64
}

// NewResolver creates a reward resolver. A non-positive defaultAmount
// falls back to DefaultRewardAmount.
func NewResolver(
	questRepo persistence.QuestRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaultAmount int64,
) *Resolver {
	if defaultAmount <= 0 {
		defaultAmount = DefaultRewardAmount
	}
	return &Resolver{
		questRepo:     questRepo,
		timeProvider:  timeProvider,
		logger:        logger,
		defaultAmount: defaultAmount,
	}
}

// Resolve normalizes the trigger key and returns its reward definition.
// A missing definition is synthesized with the default amount and
// persisted; a store failure returns the same default without persisting,
// so a broken reward table never blocks granting.
func (r *Resolver) Resolve(ctx context.Context, triggerKey string) (*usecase.ResolvedReward, error) {
	number := entity.NormalizeQuestNumber(triggerKey)

	quest, err := r.questRepo.GetByNumber(ctx, number)
	if err == nil {
		return &usecase.ResolvedReward{
			Amount:  quest.Reward,
			Title:   quest.Title,
			Outcome: usecase.RewardFound,
		}, nil
	}

	fallback := &usecase.ResolvedReward{
		Amount:  r.defaultAmount,
		Title:   defaultTitle(number),
		Outcome: usecase.RewardFallback,
	}

	if !errors.Is(err, errs.ErrQuestNotFound) {
		r.logger.Warn("Reward lookup failed, using default", map[string]any{
			"trigger_key": number,
			"amount":      r.defaultAmount,
			"error":       err.Error(),
		})
		return fallback, nil
	}

	quest, err = entity.NewQuest(number, r.defaultAmount, defaultTitle(number), r.timeProvider.Now())
	if err != nil {
		return fallback, nil
	}

	if err := r.questRepo.Create(ctx, quest); err != nil {
		r.logger.Warn("Failed to persist auto-created reward, using default", map[string]any{
			"trigger_key": number,
			"error":       err.Error(),
		})
		return fallback, nil
	}

	r.logger.Info("Reward definition auto-created", map[string]any{
		"trigger_key": number,
		"amount":      r.defaultAmount,
	})

	return &usecase.ResolvedReward{
		Amount:  quest.Reward,
		Title:   quest.Title,
		Outcome: usecase.RewardAutoCreated,
	}, nil
}

func defaultTitle(number string) string {
	return fmt.Sprintf("Quest %s", number)
}
