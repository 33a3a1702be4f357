package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// QuestRepository implements persistence.QuestRepository using GORM
type QuestRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewQuestRepository creates a new QuestRepository instance
func NewQuestRepository(db *gorm.DB, logger coreport.Logger) *QuestRepository {
	return &QuestRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func questModelToEntity(questModel *model.Quest) *entity.Quest {
	return &entity.Quest{
		ID:        questModel.ID,
		Number:    questModel.Number,
		Reward:    questModel.Reward,
		Title:     questModel.Title,
		UpdatedAt: questModel.UpdatedAt,
	}
}

func (r *QuestRepository) handleDatabaseError(operation, key string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrQuestNotFound
	}

	r.logger.Error("Database error on quest operation", map[string]any{
		"operation": operation,
		"key":       key,
		"error":     err.Error(),
	})
	return errs.NewStoreError(operation, key, err)
}

// GetByNumber retrieves a quest by its zero-padded number
func (r *QuestRepository) GetByNumber(ctx context.Context, number string) (*entity.Quest, error) {
	var questModel model.Quest
	result := r.db.WithContext(ctx).Where("number = ?", number).First(&questModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("quest.get_by_number", number, result.Error)
	}

	return questModelToEntity(&questModel), nil
}

// GetByID retrieves a quest by ID
func (r *QuestRepository) GetByID(ctx context.Context, id uint64) (*entity.Quest, error) {
	var questModel model.Quest
	result := r.db.WithContext(ctx).First(&questModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("quest.get", strconv.FormatUint(id, 10), result.Error)
	}

	return questModelToEntity(&questModel), nil
}

// List returns all quests ordered by quest number
func (r *QuestRepository) List(ctx context.Context) ([]*entity.Quest, error) {
	var questModels []model.Quest
	result := r.db.WithContext(ctx).Order("number").Find(&questModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("quest.list", "all", result.Error)
	}

	quests := make([]*entity.Quest, 0, len(questModels))
	for i := range questModels {
		quests = append(quests, questModelToEntity(&questModels[i]))
	}

	return quests, nil
}

// Create inserts a new quest definition. The quest number carries a unique
// index, so concurrent auto-creation of the same number fails for all but
// one writer.
func (r *QuestRepository) Create(ctx context.Context, quest *entity.Quest) error {
	questModel := model.Quest{
		Number:    quest.Number,
		Reward:    quest.Reward,
		Title:     quest.Title,
		UpdatedAt: quest.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&questModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Quest number already defined", map[string]any{
				"number": quest.Number,
			})
		}
		return r.handleDatabaseError("quest.create", quest.Number, err)
	}

	quest.ID = questModel.ID
	return nil
}

// Update writes a quest's number, reward and title
func (r *QuestRepository) Update(ctx context.Context, quest *entity.Quest) error {
	result := r.db.WithContext(ctx).
		Model(&model.Quest{}).
		Where("id = ?", quest.ID).
		Updates(map[string]any{
			"number":     quest.Number,
			"reward":     quest.Reward,
			"title":      quest.Title,
			"updated_at": quest.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("quest.update", strconv.FormatUint(quest.ID, 10), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrQuestNotFound
	}

	return nil
}

// Delete removes a quest definition
func (r *QuestRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Quest{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("quest.delete", strconv.FormatUint(id, 10), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrQuestNotFound
	}

	return nil
}
