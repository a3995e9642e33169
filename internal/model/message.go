package model

import "time"

// Message 社区内消息，社区删除时级联清理
type Message struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CommunityID uint64    `gorm:"not null;index:idx_community_time" json:"community_id"`
	AuthorID    uint64    `gorm:"not null;index" json:"author_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `gorm:"index:idx_community_time" json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}
