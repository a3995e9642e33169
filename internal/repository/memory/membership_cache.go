package memory

import (
	"context"
	"fmt"
	"sync"

	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"
)

// MembershipCache 进程内成员兜底存储。持久库不可用时写到这里，
// 非持久，重启即空。不命中返回 pkg.ErrNotFound，与持久仓储契约一致。
type MembershipCache struct {
	mu      sync.RWMutex
	entries map[string]model.CommunityMember
}

func NewMembershipCache() *MembershipCache {
	return &MembershipCache{entries: make(map[string]model.CommunityMember)}
}

func key(communityID, userID uint64) string {
	return fmt.Sprintf("%d:%d", communityID, userID)
}

func (c *MembershipCache) Get(ctx context.Context, communityID, userID uint64) (*model.CommunityMember, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.entries[key(communityID, userID)]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return &m, nil
}

func (c *MembershipCache) Add(ctx context.Context, m *model.CommunityMember) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(m.CommunityID, m.UserID)] = *m
	return nil
}

// Remove 幂等，不存在也算成功
func (c *MembershipCache) Remove(ctx context.Context, communityID, userID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key(communityID, userID))
	return nil
}

func (c *MembershipCache) ListByCommunity(ctx context.Context, communityID uint64) ([]model.CommunityMember, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list := make([]model.CommunityMember, 0)
	for _, m := range c.entries {
		if m.CommunityID == communityID {
			list = append(list, m)
		}
	}
	return list, nil
}

// RemoveByCommunity 社区删除时清理兜底残留
func (c *MembershipCache) RemoveByCommunity(ctx context.Context, communityID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, m := range c.entries {
		if m.CommunityID == communityID {
			delete(c.entries, k)
		}
	}
	return nil
}
