package model

import "time"

type Community struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:32" json:"category"`
	Color       string    `gorm:"size:16" json:"color"`
	CreatorID   uint64    `gorm:"not null;index" json:"creator_id"`
	MemberCount int64     `gorm:"not null;default:0" json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	RoleMember = 0
	RoleAdmin  = 1
)

type CommunityMember struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CommunityID uint64    `gorm:"not null;index;uniqueIndex:uk_community_user" json:"community_id"`
	UserID      uint64    `gorm:"not null;index;uniqueIndex:uk_community_user" json:"user_id"`
	Role        int       `gorm:"not null;default:0" json:"role"` // 0=member, 1=admin
	CreatedAt   time.Time `json:"joined_at"`
	UpdatedAt   time.Time `json:"-"`
}
