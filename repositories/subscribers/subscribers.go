package subscribers

import (
	"errors"
	"fmt"

	"github.com/M-S-KHAN/hadith-inc/models/entities"
	"github.com/M-S-KHAN/hadith-inc/utils/databases"

	"gorm.io/gorm"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

func (repo *Impl) Save(sub entities.Subscriber) (SaveResult, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var existing entities.Subscriber
	result := repo.db.GetDB().Where("chat_id = ?", sub.ChatID).First(&existing)

	if result.Error == nil {
		return AlreadyPresent, nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to check subscriber existence: %w", result.Error)
	}

	if err := repo.db.GetDB().Create(&sub).Error; err != nil {
		return 0, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return Added, nil
}

func (repo *Impl) Delete(chatID int64) (DeleteResult, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	result := repo.db.GetDB().Delete(&entities.Subscriber{}, chatID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete subscriber: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return NotPresent, nil
	}

	return Removed, nil
}

func (repo *Impl) FetchAll() ([]entities.Subscriber, error) {
	var subs []entities.Subscriber
	result := repo.db.GetDB().Find(&subs)

	return subs, result.Error
}
