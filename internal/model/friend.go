package model

import "time"

const (
	FriendRequestPending  = 0
	FriendRequestAccepted = 1
	FriendRequestRejected = 2
)

// FriendRequest 好友申请表，(sender, receiver) 有序对
type FriendRequest struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	SenderID   uint64    `gorm:"not null;index;uniqueIndex:uk_sender_receiver" json:"sender_id"`
	ReceiverID uint64    `gorm:"not null;index;uniqueIndex:uk_sender_receiver" json:"receiver_id"`
	Status     int       `gorm:"not null;default:0" json:"status"` // 0=pending 1=accepted 2=rejected
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (FriendRequest) TableName() string { return "friend_requests" }

// Friendship 好友关系表，恒有 UserLowID < UserHighID，避免对称重复行
type Friendship struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	UserLowID  uint64    `gorm:"not null;index;uniqueIndex:uk_low_high" json:"user1_id"`
	UserHighID uint64    `gorm:"not null;index;uniqueIndex:uk_low_high" json:"user2_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Friendship) TableName() string { return "friendships" }

// OrderPair 规范化好友对
func OrderPair(a, b uint64) (low, high uint64) {
	if a < b {
		return a, b
	}
	return b, a
}
