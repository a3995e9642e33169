package mysql

import (
	"context"
	"errors"

	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// CountPair 对账消息结构体
type CountPair struct {
	ID          uint64
	MemberCount int64
}

// Create 建社区并让创建者成为唯一管理员，两步一个事务
func (r *CommunityRepository) Create(ctx context.Context, c *model.Community) (*model.Community, error) {
	c.MemberCount = 1
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}

		// 幂等加入：仓储已 DoNothing
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&model.CommunityMember{
			CommunityID: c.ID,
			UserID:      c.CreatorID,
			Role:        model.RoleAdmin,
		}).Error; err != nil {
			return err
		}

		return insertOutbox(tx, "community_create", c.CreatorID, c.ID)
	})
	return c, err
}

func (r *CommunityRepository) FindByID(ctx context.Context, id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.WithContext(ctx).First(&community, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *CommunityRepository) FindByName(ctx context.Context, name string) (*model.Community, error) {
	var community model.Community
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&community).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *CommunityRepository) List(ctx context.Context, offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.WithContext(ctx).Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// DeleteByID 幂等硬删除：无论是否存在，最终都视为成功
func (r *CommunityRepository) DeleteByID(ctx context.Context, id uint64) error {
	tx := r.DB.WithContext(ctx).Delete(&model.Community{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	// RowsAffected == 0（已不存在）也返回 nil，保证幂等
	return nil
}

// AdjustMemberCount 单条语句自增自减，下限钳到0
func (r *CommunityRepository) AdjustMemberCount(ctx context.Context, communityID uint64, delta int64) error {
	return r.DB.WithContext(ctx).Model(&model.Community{}).
		Where("id = ?", communityID).
		UpdateColumn("member_count",
			gorm.Expr("CASE WHEN member_count + ? < 0 THEN 0 ELSE member_count + ? END", delta, delta)).Error
}

// ListCounts 对账批量查询，按ID游标推进
func (r *CommunityRepository) ListCounts(ctx context.Context, batchSize int, lastID uint64) ([]CountPair, uint64, error) {
	var list []CountPair
	if err := r.DB.WithContext(ctx).Model(&model.Community{}).
		Select("id", "member_count").
		Where("id > ?", lastID).
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, lastID, err
	}
	if len(list) == 0 {
		return nil, lastID, nil
	}
	return list, list[len(list)-1].ID, nil
}

// SetMemberCount 对账修正
func (r *CommunityRepository) SetMemberCount(ctx context.Context, communityID uint64, n int64) error {
	return r.DB.WithContext(ctx).Model(&model.Community{}).
		Where("id = ?", communityID).
		UpdateColumn("member_count", n).Error
}
