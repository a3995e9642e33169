package service

import (
	"context"
	"errors"
	"time"

	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"

	"github.com/rs/zerolog/log"
)

// MembershipStore 成员存储契约，持久库和进程内兜底缓存各实现一份。
// 未命中返回 pkg.ErrNotFound，其余错误表示存储故障。
type MembershipStore interface {
	Get(ctx context.Context, communityID, userID uint64) (*model.CommunityMember, error)
	Add(ctx context.Context, m *model.CommunityMember) error
	Remove(ctx context.Context, communityID, userID uint64) error
	ListByCommunity(ctx context.Context, communityID uint64) ([]model.CommunityMember, error)
	RemoveByCommunity(ctx context.Context, communityID uint64) error
}

type MemberCounter interface {
	AdjustMemberCount(ctx context.Context, communityID uint64, delta int64) error
}

type EventRecorder interface {
	Insert(ctx context.Context, event string, actorID, subjectID uint64) error
}

// MembershipLedger 成员账本：先走持久库，存储故障时降级到兜底缓存。
// 调用方拿到的结果不区分两条路径，这是有意的简化。
type MembershipLedger struct {
	durable  MembershipStore
	fallback MembershipStore
	counts   MemberCounter
	events   EventRecorder
}

func NewMembershipLedger(durable, fallback MembershipStore, counts MemberCounter, events EventRecorder) *MembershipLedger {
	return &MembershipLedger{
		durable:  durable,
		fallback: fallback,
		counts:   counts,
		events:   events,
	}
}

// GetMembership 不存在不是错误，返回 (nil, nil)
func (l *MembershipLedger) GetMembership(ctx context.Context, communityID, userID uint64) (*model.CommunityMember, error) {
	m, err := l.durable.Get(ctx, communityID, userID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pkg.ErrNotFound) {
		log.Warn().Err(err).Uint64("community_id", communityID).Uint64("user_id", userID).
			Msg("membership get degraded to fallback")
	}

	// 持久库读不到（不存在或故障）都要再看兜底缓存，降级写只会落在那里
	m, err = l.fallback.Get(ctx, communityID, userID)
	if err != nil {
		return nil, nil
	}
	return m, nil
}

// AddMembership 持久写失败时合成一条记录写入兜底缓存，对调用方永远成功
func (l *MembershipLedger) AddMembership(ctx context.Context, communityID, userID uint64, role int, event string) (*model.CommunityMember, error) {
	m := &model.CommunityMember{
		CommunityID: communityID,
		UserID:      userID,
		Role:        role,
		CreatedAt:   time.Now(),
	}

	if err := l.durable.Add(ctx, m); err != nil {
		log.Warn().Err(err).Uint64("community_id", communityID).Uint64("user_id", userID).
			Msg("membership add degraded to fallback")
		_ = l.fallback.Add(ctx, m)
	}

	l.adjustCount(ctx, communityID, +1)
	l.record(ctx, event, userID, communityID)
	return m, nil
}

// RemoveMembership 幂等，对调用方永远成功
func (l *MembershipLedger) RemoveMembership(ctx context.Context, communityID, userID, actorID uint64, event string) error {
	if _, err := l.durable.Get(ctx, communityID, userID); err == nil {
		if err := l.durable.Remove(ctx, communityID, userID); err != nil {
			log.Warn().Err(err).Uint64("community_id", communityID).Uint64("user_id", userID).
				Msg("membership remove failed on durable store")
		}
	}
	_ = l.fallback.Remove(ctx, communityID, userID)

	l.adjustCount(ctx, communityID, -1)
	l.record(ctx, event, actorID, communityID)
	return nil
}

// ListMemberships 持久库故障时退回兜底缓存的视图
func (l *MembershipLedger) ListMemberships(ctx context.Context, communityID uint64) ([]model.CommunityMember, error) {
	list, err := l.durable.ListByCommunity(ctx, communityID)
	if err != nil {
		log.Warn().Err(err).Uint64("community_id", communityID).
			Msg("membership list degraded to fallback")
		return l.fallback.ListByCommunity(ctx, communityID)
	}
	return list, nil
}

// PurgeCommunity 社区删除时两侧都清，逐步失败只记日志
func (l *MembershipLedger) PurgeCommunity(ctx context.Context, communityID uint64) {
	if err := l.durable.RemoveByCommunity(ctx, communityID); err != nil {
		log.Error().Err(err).Uint64("community_id", communityID).
			Msg("purge memberships failed on durable store")
	}
	_ = l.fallback.RemoveByCommunity(ctx, communityID)
}

func (l *MembershipLedger) adjustCount(ctx context.Context, communityID uint64, delta int64) {
	if err := l.counts.AdjustMemberCount(ctx, communityID, delta); err != nil {
		log.Warn().Err(err).Uint64("community_id", communityID).Int64("delta", delta).
			Msg("member_count adjust failed, reconciler will repair")
	}
}

func (l *MembershipLedger) record(ctx context.Context, event string, actorID, subjectID uint64) {
	if event == "" {
		return
	}
	if err := l.events.Insert(ctx, event, actorID, subjectID); err != nil {
		log.Warn().Err(err).Str("event", event).Msg("outbox insert failed")
	}
}
