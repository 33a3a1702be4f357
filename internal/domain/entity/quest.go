package entity

import (
	"strings"
	"time"

	errs "github.com/fbp-works/economy-service/internal/domain/error"
)

// QuestNumberWidth is the fixed width quest numbers are padded to.
const QuestNumberWidth = 3

// Quest is a reward definition keyed by a zero-padded trigger number.
type Quest struct {
	ID        uint64
	Number    string
	Reward    int64
	Title     string
	UpdatedAt time.Time
}

// NewQuest creates a quest definition with a normalized number
func NewQuest(number string, reward int64, title string, now time.Time) (*Quest, error) {
	number = NormalizeQuestNumber(number)
	if number == "" {
		return nil, errs.ErrInvalidName
	}
	if reward < 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Quest{
		Number:    number,
		Reward:    reward,
		Title:     strings.TrimSpace(title),
		UpdatedAt: now,
	}, nil
}

// NormalizeQuestNumber left-pads a trigger number with zeros to the fixed
// width. Numbers already at or beyond the width are kept as-is.
func NormalizeQuestNumber(number string) string {
	number = strings.TrimSpace(number)
	for len(number) > 0 && len(number) < QuestNumberWidth {
		number = "0" + number
	}
	return number
}
