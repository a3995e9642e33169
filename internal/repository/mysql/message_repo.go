package mysql

import (
	"context"

	"Hive_Social/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {
	return r.DB.WithContext(ctx).Create(msg).Error
}

func (r *MessageRepository) ListByCommunity(ctx context.Context, communityID uint64, offset, limit int) ([]model.Message, error) {
	var list []model.Message
	err := r.DB.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// DeleteByCommunity 社区级联删除用
func (r *MessageRepository) DeleteByCommunity(ctx context.Context, communityID uint64) error {
	return r.DB.WithContext(ctx).
		Where("community_id = ?", communityID).
		Delete(&model.Message{}).Error
}
