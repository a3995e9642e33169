package service

import (
	"context"
	"fmt"
	"testing"

	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.CommunityMember{},
		&model.FriendRequest{},
		&model.Friendship{},
		&model.Message{},
		&model.SocialOutbox{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		Username:    username,
		Password:    "x",
		DisplayName: username,
		Email:       fmt.Sprintf("%s@example.com", username),
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("want error code %s, got nil", code)
	}
	ae, ok := pkg.AsAppError(err)
	if !ok {
		t.Fatalf("want AppError %s, got %v", code, err)
	}
	if ae.Code != code {
		t.Fatalf("want code %s, got %s (%s)", code, ae.Code, ae.Message)
	}
}

func memberCount(t *testing.T, db *gorm.DB, communityID uint64) (denorm int64, rows int64) {
	t.Helper()
	var c model.Community
	if err := db.First(&c, communityID).Error; err != nil {
		t.Fatalf("load community: %v", err)
	}
	if err := db.Model(&model.CommunityMember{}).
		Where("community_id = ?", communityID).Count(&rows).Error; err != nil {
		t.Fatalf("count members: %v", err)
	}
	return c.MemberCount, rows
}

func checkCountConsistent(t *testing.T, db *gorm.DB, communityID uint64, want int64) {
	t.Helper()
	denorm, rows := memberCount(t, db, communityID)
	if denorm != want || rows != want {
		t.Fatalf("member_count=%d membership rows=%d, want both %d", denorm, rows, want)
	}
}

var testCtx = context.Background()
