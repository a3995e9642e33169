package service

import (
	"context"
	"time"

	"Hive_Social/internal/repository/mysql"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MemberCountReconciler 定时把member_count和成员行真实数量对齐，
// 修复降级路径或并发留下的偏差
type MemberCountReconciler struct {
	communities *mysql.CommunityRepository
	members     *mysql.MembershipRepository
	batchSize   int
	interval    time.Duration
	lastID      uint64
}

func NewMemberCountReconciler(db *gorm.DB) *MemberCountReconciler {
	return &MemberCountReconciler{
		communities: &mysql.CommunityRepository{DB: db},
		members:     &mysql.MembershipRepository{DB: db},
		batchSize:   500,
		interval:    5 * time.Minute,
	}
}

func (r *MemberCountReconciler) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.reconcileOnce(ctx)
		}
	}
}

func (r *MemberCountReconciler) reconcileOnce(ctx context.Context) {
	pairs, next, err := r.communities.ListCounts(ctx, r.batchSize, r.lastID)
	if err != nil {
		log.Error().Err(err).Msg("reconcile list failed")
		return
	}
	if len(pairs) == 0 {
		// 走完一轮，从头再来
		r.lastID = 0
		return
	}
	r.lastID = next

	for _, p := range pairs {
		real, err := r.members.CountByCommunity(ctx, p.ID)
		if err != nil {
			continue
		}
		if real != p.MemberCount {
			if err := r.communities.SetMemberCount(ctx, p.ID, real); err != nil {
				continue
			}
			log.Info().Uint64("community_id", p.ID).Int64("from", p.MemberCount).
				Int64("to", real).Msg("member_count reconciled")
		}
	}
}
