package service

import (
	"testing"

	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"
)

func TestSendRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(db)
	alice := seedUser(t, db, "alice")
	seedUser(t, db, "bob")

	tests := []struct {
		name     string
		username string
		wantCode string
	}{
		{name: "ok", username: "bob"},
		{name: "empty username", username: "", wantCode: pkg.CodeValidation},
		{name: "unknown user", username: "nobody", wantCode: pkg.CodeNotFound},
		{name: "self request", username: "alice", wantCode: pkg.CodeValidation},
		{name: "duplicate", username: "bob", wantCode: pkg.CodeConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := svc.SendRequest(testCtx, alice.ID, tt.username)
			if tt.wantCode != "" {
				wantCode(t, err, tt.wantCode)
				return
			}
			if err != nil {
				t.Fatalf("send: %v", err)
			}
			if req.Status != model.FriendRequestPending {
				t.Fatalf("status = %d, want pending", req.Status)
			}
		})
	}
}

// TestSendRequestReverseBlocked 反方向已有申请也算冲突
func TestSendRequestReverseBlocked(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	if _, err := svc.SendRequest(testCtx, alice.ID, "bob"); err != nil {
		t.Fatalf("send: %v", err)
	}
	_, err := svc.SendRequest(testCtx, bob.ID, "alice")
	wantCode(t, err, pkg.CodeConflict)
}

func TestAcceptRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	req, err := svc.SendRequest(testCtx, alice.ID, "bob")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	// 只有收件人能接受
	_, err = svc.AcceptRequest(testCtx, req.ID, alice.ID)
	wantCode(t, err, pkg.CodeNotFound)

	fs, err := svc.AcceptRequest(testCtx, req.ID, bob.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	// 好友行规范有序
	low, high := model.OrderPair(alice.ID, bob.ID)
	if fs.UserLowID != low || fs.UserHighID != high {
		t.Fatalf("friendship ordering = (%d,%d), want (%d,%d)", fs.UserLowID, fs.UserHighID, low, high)
	}

	// 双方查状态都是friends
	for _, q := range []struct {
		uid   uint64
		other string
	}{{alice.ID, "bob"}, {bob.ID, "alice"}} {
		status, err := svc.FriendshipStatus(testCtx, q.uid, q.other)
		if err != nil || status != FriendStatusFriends {
			t.Fatalf("status(%d,%s) = %q err=%v, want friends", q.uid, q.other, status, err)
		}
	}

	// 已处理的申请不能再接受
	_, err = svc.AcceptRequest(testCtx, req.ID, bob.ID)
	wantCode(t, err, pkg.CodeNotFound)
}

func TestRejectRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	req, _ := svc.SendRequest(testCtx, alice.ID, "bob")

	wantCode(t, svc.RejectRequest(testCtx, req.ID, alice.ID), pkg.CodeNotFound)

	if err := svc.RejectRequest(testCtx, req.ID, bob.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	// 拒绝后不建立好友关系
	status, err := svc.FriendshipStatus(testCtx, alice.ID, "bob")
	if err != nil || status != FriendStatusNone {
		t.Fatalf("status = %q err=%v, want none", status, err)
	}

	// 被拒绝过的申请行一直挡住重发
	_, err = svc.SendRequest(testCtx, alice.ID, "bob")
	wantCode(t, err, pkg.CodeConflict)
}

func TestCancelRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	req, _ := svc.SendRequest(testCtx, alice.ID, "bob")

	// 收件人不能撤回
	wantCode(t, svc.CancelRequest(testCtx, req.ID, bob.ID), pkg.CodeNotFound)

	if err := svc.CancelRequest(testCtx, req.ID, alice.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// 撤回后可以重发
	if _, err := svc.SendRequest(testCtx, alice.ID, "bob"); err != nil {
		t.Fatalf("resend after cancel: %v", err)
	}
}

func TestFriendshipStatusPriority(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	status, _ := svc.FriendshipStatus(testCtx, alice.ID, "bob")
	if status != FriendStatusNone {
		t.Fatalf("status = %q, want none", status)
	}

	req, _ := svc.SendRequest(testCtx, alice.ID, "bob")

	status, _ = svc.FriendshipStatus(testCtx, alice.ID, "bob")
	if status != FriendStatusRequestSent {
		t.Fatalf("status = %q, want request_sent", status)
	}
	status, _ = svc.FriendshipStatus(testCtx, bob.ID, "alice")
	if status != FriendStatusRequestReceived {
		t.Fatalf("status = %q, want request_received", status)
	}

	svc.AcceptRequest(testCtx, req.ID, bob.ID)
	status, _ = svc.FriendshipStatus(testCtx, alice.ID, "bob")
	if status != FriendStatusFriends {
		t.Fatalf("status = %q, want friends", status)
	}

	// 不存在的用户
	if _, err := svc.FriendshipStatus(testCtx, alice.ID, "nobody"); err == nil {
		t.Fatal("want not found error")
	}
}

func TestListFriends(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	r1, _ := svc.SendRequest(testCtx, alice.ID, "bob")
	svc.AcceptRequest(testCtx, r1.ID, bob.ID)
	r2, _ := svc.SendRequest(testCtx, carol.ID, "alice")
	svc.AcceptRequest(testCtx, r2.ID, alice.ID)

	views, err := svc.ListFriends(testCtx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d friends, want 2", len(views))
	}
	names := map[string]bool{}
	for _, v := range views {
		if v.FriendshipID == 0 || v.Since.IsZero() {
			t.Fatalf("bad view: %+v", v)
		}
		names[v.Username] = true
	}
	if !names["bob"] || !names["carol"] {
		t.Fatalf("friend names = %v", names)
	}

	// 没有好友返回空数组不是nil
	views, err = svc.ListFriends(testCtx, bob.ID+carol.ID+100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if views == nil || len(views) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", views)
	}
}

func TestListIncoming(t *testing.T) {
	db := newTestDB(t)
	svc := NewFriendService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	svc.SendRequest(testCtx, alice.ID, "carol")
	svc.SendRequest(testCtx, bob.ID, "carol")

	views, err := svc.ListIncoming(testCtx, carol.ID)
	if err != nil {
		t.Fatalf("incoming: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d requests, want 2", len(views))
	}
	for _, v := range views {
		if v.Username == "" || v.RequestID == 0 {
			t.Fatalf("bad view: %+v", v)
		}
	}
}
