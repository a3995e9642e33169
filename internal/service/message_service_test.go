package service

import (
	"testing"

	"Hive_Social/internal/pkg"
)

func TestCreateMessage(t *testing.T) {
	db := newTestDB(t)
	commSvc := NewCommunityService(db)
	svc := NewMessageService(db, commSvc.Ledger())
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	c, _ := commSvc.CreateCommunity(testCtx, alice.ID, "Robotics", "", "", "")

	// 非成员不能发
	_, err := svc.CreateMessage(testCtx, bob.ID, c.ID, "hello")
	wantCode(t, err, pkg.CodeForbidden)

	// 空内容
	_, err = svc.CreateMessage(testCtx, alice.ID, c.ID, "   ")
	wantCode(t, err, pkg.CodeValidation)

	msg, err := svc.CreateMessage(testCtx, alice.ID, c.ID, "hello")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if msg.ID == 0 || msg.AuthorID != alice.ID {
		t.Fatalf("bad message: %+v", msg)
	}
}

// TestListMessagesEmpty 没有消息返回空数组不是nil
func TestListMessagesEmpty(t *testing.T) {
	db := newTestDB(t)
	commSvc := NewCommunityService(db)
	svc := NewMessageService(db, commSvc.Ledger())
	alice := seedUser(t, db, "alice")

	c, _ := commSvc.CreateCommunity(testCtx, alice.ID, "Robotics", "", "", "")

	list, err := svc.ListByCommunity(testCtx, c.ID, 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", list)
	}
}
