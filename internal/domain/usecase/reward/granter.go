package reward

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/gateway"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
)

// Granter runs the reward-grant flow: trigger event in, wallet credit and
// best-effort notification out.
type Granter struct {
	resolver  *Resolver
	dedup     *DedupFilter
	registry  usecase.RegistryUseCase
	wallets   usecase.WalletUseCase
	directory gateway.MemberDirectory
	notifier  gateway.Notifier
	logger    coreport.Logger

	triggerGroupID string
}

// NewGranter creates a reward granter bound to the configured trigger
// group
func NewGranter(
	resolver *Resolver,
	dedup *DedupFilter,
	registry usecase.RegistryUseCase,
	wallets usecase.WalletUseCase,
	directory gateway.MemberDirectory,
	notifier gateway.Notifier,
	logger coreport.Logger,
	triggerGroupID string,
) *Granter {
	return &Granter{
		resolver:       resolver,
		dedup:          dedup,
		registry:       registry,
		wallets:        wallets,
		directory:      directory,
		notifier:       notifier,
		logger:         logger,
		triggerGroupID: triggerGroupID,
	}
}

// Resolve exposes the underlying resolver so the granter satisfies the
// reward use case port.
func (g *Granter) Resolve(ctx context.Context, triggerKey string) (*usecase.ResolvedReward, error) {
	return g.resolver.Resolve(ctx, triggerKey)
}

// HandleTriggerEvent processes one external trigger event. Events outside
// the trigger group, duplicates within the dedup window, and subjects that
// don't match the trigger pattern are ignored without error. The wallet is
// credited before notification is attempted; a failed notification never
// rolls the grant back.
func (g *Granter) HandleTriggerEvent(ctx context.Context, event usecase.TriggerEvent) error {
	if event.ParentGroupID != g.triggerGroupID {
		g.logger.Debug("Trigger event outside target group", map[string]any{
			"subject":  event.SubjectName,
			"group_id": event.ParentGroupID,
		})
		return nil
	}

	if !g.dedup.ShouldProcess(event.SubjectName, event.Timestamp) {
		g.logger.Info("Duplicate trigger suppressed", map[string]any{
			"subject": event.SubjectName,
			"window":  g.dedup.Window().String(),
		})
		return nil
	}

	triggerID, target, ok := ParseTrigger(event.SubjectName)
	if !ok {
		g.logger.Debug("Subject is not a reward trigger", map[string]any{
			"subject": event.SubjectName,
		})
		return nil
	}

	externalID, err := g.directory.FindByUsername(ctx, target)
	if err != nil {
		if errors.Is(err, errs.ErrMemberNotFound) {
			g.logger.Warn("Trigger target not found in roster", map[string]any{
				"subject": event.SubjectName,
				"target":  target,
			})
			return nil
		}
		g.logger.Error("Roster lookup failed", map[string]any{
			"subject": event.SubjectName,
			"target":  target,
			"error":   err.Error(),
		})
		return err
	}

	user, err := g.registry.GetOrCreate(ctx, externalID)
	if err != nil {
		return err
	}

	reward, err := g.resolver.Resolve(ctx, triggerID)
	if err != nil {
		return err
	}

	newBalance, err := g.wallets.ApplyDelta(ctx, user.ID, reward.Amount, entity.ActorSystem)
	if err != nil {
		g.logger.Error("Reward credit failed", map[string]any{
			"user_id":    user.ID,
			"trigger_id": triggerID,
			"amount":     reward.Amount,
			"error":      err.Error(),
		})
		return err
	}

	g.logger.Info("Reward granted", map[string]any{
		"user_id":     user.ID,
		"trigger_id":  triggerID,
		"amount":      reward.Amount,
		"outcome":     string(reward.Outcome),
		"new_balance": newBalance,
	})

	// Credit first, notify best-effort: a display failure must never lose
	// a reward that was already granted.
	notification := gateway.Notification{
		Title: fmt.Sprintf("Report %s completion bonus", triggerID),
		Body:  fmt.Sprintf("%d points granted to %s", reward.Amount, target),
	}
	channelKey := notificationChannelKey(target)
	if err := g.notifier.Send(ctx, channelKey, notification); err != nil {
		g.logger.Warn("Reward notification failed", map[string]any{
			"user_id":     user.ID,
			"channel_key": channelKey,
			"error":       err.Error(),
		})
	}

	return nil
}

// notificationChannelKey derives the per-member notification channel name
func notificationChannelKey(target string) string {
	return strings.ToLower(target) + "-notifications"
}
