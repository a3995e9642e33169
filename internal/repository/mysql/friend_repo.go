package mysql

import (
	"context"
	"errors"

	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendRepository struct {
	DB *gorm.DB
}

// FindRequestBetween 任意方向、任意状态的申请行。被拒绝的申请也会命中，
// 从而一直阻止重发。
func (r *FriendRepository) FindRequestBetween(ctx context.Context, a, b uint64) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.DB.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindPending 指定方向的pending申请
func (r *FriendRepository) FindPending(ctx context.Context, senderID, receiverID uint64) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.DB.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, model.FriendRequestPending).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *FriendRepository) CreateRequest(ctx context.Context, req *model.FriendRequest) error {
	return r.DB.WithContext(ctx).Create(req).Error
}

// AcceptRequest 只有收件人能接受。接受与建立好友关系在同一事务内完成。
func (r *FriendRepository) AcceptRequest(ctx context.Context, requestID, receiverID uint64) (*model.Friendship, error) {
	var fs model.Friendship
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req model.FriendRequest
		if err := tx.
			Where("id = ? AND receiver_id = ? AND status = ?", requestID, receiverID, model.FriendRequestPending).
			First(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkg.ErrNotFound
			}
			return err
		}

		if err := tx.Model(&model.FriendRequest{}).
			Where("id = ?", req.ID).
			Update("status", model.FriendRequestAccepted).Error; err != nil {
			return err
		}

		low, high := model.OrderPair(req.SenderID, req.ReceiverID)
		fs = model.Friendship{UserLowID: low, UserHighID: high}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_low_id"}, {Name: "user_high_id"}},
			DoNothing: true,
		}).Create(&fs).Error; err != nil {
			return err
		}

		return insertOutbox(tx, "friend_accept", receiverID, req.SenderID)
	})
	if err != nil {
		return nil, err
	}
	return &fs, nil
}

// RejectRequest 只有收件人能拒绝
func (r *FriendRepository) RejectRequest(ctx context.Context, requestID, receiverID uint64) error {
	tx := r.DB.WithContext(ctx).Model(&model.FriendRequest{}).
		Where("id = ? AND receiver_id = ? AND status = ?", requestID, receiverID, model.FriendRequestPending).
		Update("status", model.FriendRequestRejected)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

// CancelRequest 只有发送者能撤回，且只能撤回pending
func (r *FriendRepository) CancelRequest(ctx context.Context, requestID, senderID uint64) error {
	tx := r.DB.WithContext(ctx).
		Where("id = ? AND sender_id = ? AND status = ?", requestID, senderID, model.FriendRequestPending).
		Delete(&model.FriendRequest{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

// FindFriendship 好友关系查询，入参无需有序
func (r *FriendRepository) FindFriendship(ctx context.Context, a, b uint64) (*model.Friendship, error) {
	low, high := model.OrderPair(a, b)
	var fs model.Friendship
	err := r.DB.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", low, high).
		First(&fs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &fs, nil
}

// ListFriendships 用户在任一侧的所有好友关系
func (r *FriendRepository) ListFriendships(ctx context.Context, userID uint64) ([]model.Friendship, error) {
	var list []model.Friendship
	err := r.DB.WithContext(ctx).
		Where("user_low_id = ? OR user_high_id = ?", userID, userID).
		Order("id DESC").
		Find(&list).Error
	return list, err
}

// ListIncoming 收到的pending申请
func (r *FriendRepository) ListIncoming(ctx context.Context, receiverID uint64) ([]model.FriendRequest, error) {
	var list []model.FriendRequest
	err := r.DB.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", receiverID, model.FriendRequestPending).
		Order("id DESC").
		Find(&list).Error
	return list, err
}
