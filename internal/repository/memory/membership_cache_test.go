package memory

import (
	"context"
	"errors"
	"testing"

	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"
)

func TestMembershipCache(t *testing.T) {
	ctx := context.Background()
	c := NewMembershipCache()

	if _, err := c.Get(ctx, 1, 2); !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("empty get err = %v, want ErrNotFound", err)
	}

	if err := c.Add(ctx, &model.CommunityMember{CommunityID: 1, UserID: 2, Role: model.RoleAdmin}); err != nil {
		t.Fatalf("add: %v", err)
	}
	m, err := c.Get(ctx, 1, 2)
	if err != nil || m.Role != model.RoleAdmin {
		t.Fatalf("get = %+v err=%v", m, err)
	}

	// 同键覆盖
	if err := c.Add(ctx, &model.CommunityMember{CommunityID: 1, UserID: 2, Role: model.RoleMember}); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	m, _ = c.Get(ctx, 1, 2)
	if m.Role != model.RoleMember {
		t.Fatalf("role after overwrite = %d, want member", m.Role)
	}

	// 删除幂等
	if err := c.Remove(ctx, 1, 2); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := c.Remove(ctx, 1, 2); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestMembershipCacheByCommunity(t *testing.T) {
	ctx := context.Background()
	c := NewMembershipCache()

	c.Add(ctx, &model.CommunityMember{CommunityID: 1, UserID: 10})
	c.Add(ctx, &model.CommunityMember{CommunityID: 1, UserID: 11})
	c.Add(ctx, &model.CommunityMember{CommunityID: 2, UserID: 10})

	list, err := c.ListByCommunity(ctx, 1)
	if err != nil || len(list) != 2 {
		t.Fatalf("list = %v err=%v, want 2 entries", list, err)
	}

	if err := c.RemoveByCommunity(ctx, 1); err != nil {
		t.Fatalf("purge: %v", err)
	}
	list, _ = c.ListByCommunity(ctx, 1)
	if len(list) != 0 {
		t.Fatalf("entries left after purge: %v", list)
	}
	if _, err := c.Get(ctx, 2, 10); err != nil {
		t.Fatal("other community entry lost")
	}
}
