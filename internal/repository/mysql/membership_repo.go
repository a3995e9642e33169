package mysql

import (
	"context"
	"errors"

	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository 持久成员存储。未命中返回 pkg.ErrNotFound，
// 其它错误一律视为存储故障，由上层决定是否降级。
type MembershipRepository struct {
	DB *gorm.DB
}

func (r *MembershipRepository) Get(ctx context.Context, communityID, userID uint64) (*model.CommunityMember, error) {
	var m model.CommunityMember
	err := r.DB.WithContext(ctx).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MembershipRepository) Add(ctx context.Context, m *model.CommunityMember) error {
	// 幂等插入：若已存在 (community_id, user_id) 则不报错
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(m).Error
}

func (r *MembershipRepository) Remove(ctx context.Context, communityID, userID uint64) error {
	return r.DB.WithContext(ctx).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Delete(&model.CommunityMember{}).Error
}

func (r *MembershipRepository) ListByCommunity(ctx context.Context, communityID uint64) ([]model.CommunityMember, error) {
	var list []model.CommunityMember
	err := r.DB.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *MembershipRepository) RemoveByCommunity(ctx context.Context, communityID uint64) error {
	return r.DB.WithContext(ctx).
		Where("community_id = ?", communityID).
		Delete(&model.CommunityMember{}).Error
}

func (r *MembershipRepository) CountByCommunity(ctx context.Context, communityID uint64) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.CommunityMember{}).
		Where("community_id = ?", communityID).
		Count(&n).Error
	return n, err
}
