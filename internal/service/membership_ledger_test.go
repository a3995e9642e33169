package service

import (
	"context"
	"errors"
	"testing"

	"Hive_Social/internal/model"
	"Hive_Social/internal/repository/memory"
	"Hive_Social/internal/repository/mysql"
)

var errStoreDown = errors.New("store unreachable")

// failingStore 持久库全挂的替身
type failingStore struct{}

func (failingStore) Get(ctx context.Context, communityID, userID uint64) (*model.CommunityMember, error) {
	return nil, errStoreDown
}
func (failingStore) Add(ctx context.Context, m *model.CommunityMember) error { return errStoreDown }
func (failingStore) Remove(ctx context.Context, communityID, userID uint64) error {
	return errStoreDown
}
func (failingStore) ListByCommunity(ctx context.Context, communityID uint64) ([]model.CommunityMember, error) {
	return nil, errStoreDown
}
func (failingStore) RemoveByCommunity(ctx context.Context, communityID uint64) error {
	return errStoreDown
}

type failingCounter struct{}

func (failingCounter) AdjustMemberCount(ctx context.Context, communityID uint64, delta int64) error {
	return errStoreDown
}

type failingRecorder struct{}

func (failingRecorder) Insert(ctx context.Context, event string, actorID, subjectID uint64) error {
	return errStoreDown
}

// TestLedgerFallback 持久库不可用时整套操作仍然可用，走兜底缓存
func TestLedgerFallback(t *testing.T) {
	ledger := NewMembershipLedger(failingStore{}, memory.NewMembershipCache(), failingCounter{}, failingRecorder{})

	m, err := ledger.AddMembership(testCtx, 1, 42, model.RoleMember, "join")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if m == nil || m.CreatedAt.IsZero() {
		t.Fatal("fallback membership not synthesized")
	}

	got, err := ledger.GetMembership(testCtx, 1, 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.UserID != 42 {
		t.Fatalf("get = %+v, want cached membership", got)
	}

	list, err := ledger.ListMemberships(testCtx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list len = %d, want 1", len(list))
	}

	// 删除永远成功
	if err := ledger.RemoveMembership(testCtx, 1, 42, 42, "leave"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got, err = ledger.GetMembership(testCtx, 1, 42)
	if err != nil || got != nil {
		t.Fatalf("after remove: m=%+v err=%v, want nil/nil", got, err)
	}
}

// TestLedgerAbsence 哪边都没有时返回 (nil, nil)，不是错误
func TestLedgerAbsence(t *testing.T) {
	db := newTestDB(t)
	ledger := NewMembershipLedger(
		&mysql.MembershipRepository{DB: db},
		memory.NewMembershipCache(),
		&mysql.CommunityRepository{DB: db},
		&mysql.OutboxRepository{DB: db},
	)

	m, err := ledger.GetMembership(testCtx, 7, 8)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m != nil {
		t.Fatalf("get = %+v, want nil", m)
	}
}

// TestLedgerDurablePreferred 持久库可用时兜底缓存不参与
func TestLedgerDurablePreferred(t *testing.T) {
	db := newTestDB(t)
	cache := memory.NewMembershipCache()
	ledger := NewMembershipLedger(
		&mysql.MembershipRepository{DB: db},
		cache,
		&mysql.CommunityRepository{DB: db},
		&mysql.OutboxRepository{DB: db},
	)

	if _, err := ledger.AddMembership(testCtx, 1, 42, model.RoleAdmin, "join"); err != nil {
		t.Fatalf("add: %v", err)
	}

	var n int64
	db.Model(&model.CommunityMember{}).Count(&n)
	if n != 1 {
		t.Fatalf("durable rows = %d, want 1", n)
	}
	if cached, _ := cache.Get(testCtx, 1, 42); cached != nil {
		t.Fatal("durable write leaked into fallback cache")
	}

	m, err := ledger.GetMembership(testCtx, 1, 42)
	if err != nil || m == nil || m.Role != model.RoleAdmin {
		t.Fatalf("get = %+v err=%v", m, err)
	}

	if err := ledger.RemoveMembership(testCtx, 1, 42, 42, "leave"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	db.Model(&model.CommunityMember{}).Count(&n)
	if n != 0 {
		t.Fatalf("durable rows after remove = %d, want 0", n)
	}
}

// TestLedgerOutboxEvents 成员变更写outbox事件
func TestLedgerOutboxEvents(t *testing.T) {
	db := newTestDB(t)
	ledger := NewMembershipLedger(
		&mysql.MembershipRepository{DB: db},
		memory.NewMembershipCache(),
		&mysql.CommunityRepository{DB: db},
		&mysql.OutboxRepository{DB: db},
	)

	ledger.AddMembership(testCtx, 1, 42, model.RoleMember, "join")
	ledger.RemoveMembership(testCtx, 1, 42, 42, "leave")

	var events []model.SocialOutbox
	if err := db.Order("id ASC").Find(&events).Error; err != nil {
		t.Fatalf("load outbox: %v", err)
	}
	if len(events) != 2 || events[0].EventType != "join" || events[1].EventType != "leave" {
		t.Fatalf("outbox events = %+v", events)
	}
}
