package model

import "time"

// SocialOutbox 成员/好友事件监控表
type SocialOutbox struct {
	ID        uint64    `gorm:"primaryKey"`
	EventType string    `gorm:"size:32;not null"` // join / leave / remove / community_delete / friend_accept
	ActorID   uint64    `gorm:"not null"`
	SubjectID uint64    `gorm:"not null"` // 社区ID或对方用户ID
	Payload   string    `gorm:"type:json;not null"`
	Status    int8      `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SocialOutbox) TableName() string { return "social_outbox" }
