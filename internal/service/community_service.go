package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"
	"Hive_Social/internal/repository/memory"
	"Hive_Social/internal/repository/mysql"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CommunityService struct {
	repo    *mysql.CommunityRepository
	msgRepo *mysql.MessageRepository
	users   *mysql.UserRepository
	ledger  *MembershipLedger
}

// MemberView 成员列表展示项
type MemberView struct {
	UserID      uint64    `json:"user_id"`
	Role        int       `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	repo := &mysql.CommunityRepository{DB: db}
	return &CommunityService{
		repo:    repo,
		msgRepo: &mysql.MessageRepository{DB: db},
		users:   &mysql.UserRepository{DB: db},
		ledger: NewMembershipLedger(
			&mysql.MembershipRepository{DB: db},
			memory.NewMembershipCache(),
			repo,
			&mysql.OutboxRepository{DB: db},
		),
	}
}

// Ledger 好友以外也有用到成员校验的地方（消息发贴等）
func (s *CommunityService) Ledger() *MembershipLedger {
	return s.ledger
}

func (s *CommunityService) CreateCommunity(ctx context.Context, userID uint64, name, desc, category, color string) (*model.Community, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkg.Validation("community name required")
	}

	community := &model.Community{
		Name:        name,
		Description: desc,
		Category:    category,
		Color:       color,
		CreatorID:   userID,
	}

	if _, err := s.repo.Create(ctx, community); err != nil {
		return nil, err
	}

	return community, nil
}

func (s *CommunityService) JoinCommunity(ctx context.Context, userID, communityID uint64) (*model.CommunityMember, error) {
	if _, err := s.repo.FindByID(ctx, communityID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFoundErr("community not found")
		}
		return nil, err
	}

	existing, err := s.ledger.GetMembership(ctx, communityID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkg.Conflict("already a member")
	}

	return s.ledger.AddMembership(ctx, communityID, userID, model.RoleMember, "join")
}

func (s *CommunityService) LeaveCommunity(ctx context.Context, userID, communityID uint64) error {
	m, err := s.ledger.GetMembership(ctx, communityID, userID)
	if err != nil {
		return err
	}
	if m == nil {
		return pkg.NotFoundErr("not a member")
	}
	// 管理员不允许单方面退出，删社区是唯一出口
	if m.Role == model.RoleAdmin {
		return pkg.Forbidden("admin cannot leave community")
	}

	return s.ledger.RemoveMembership(ctx, communityID, userID, userID, "leave")
}

func (s *CommunityService) RemoveMember(ctx context.Context, communityID, targetUserID, actingUserID uint64) error {
	actor, err := s.ledger.GetMembership(ctx, communityID, actingUserID)
	if err != nil {
		return err
	}
	if actor == nil || actor.Role != model.RoleAdmin {
		return pkg.Forbidden("admin role required")
	}

	target, err := s.ledger.GetMembership(ctx, communityID, targetUserID)
	if err != nil {
		return err
	}
	if target == nil {
		return pkg.NotFoundErr("member not found")
	}
	if target.Role == model.RoleAdmin {
		return pkg.Forbidden("cannot remove an admin")
	}

	return s.ledger.RemoveMembership(ctx, communityID, targetUserID, actingUserID, "remove")
}

// DeleteCommunity 按序级联删除：成员、社区消息、社区本体。
// 子步骤失败记日志继续，整体尽力完成。
func (s *CommunityService) DeleteCommunity(ctx context.Context, communityID, actingUserID uint64) error {
	actor, err := s.ledger.GetMembership(ctx, communityID, actingUserID)
	if err != nil {
		return err
	}
	if actor == nil || actor.Role != model.RoleAdmin {
		return pkg.Forbidden("admin role required")
	}

	s.ledger.PurgeCommunity(ctx, communityID)

	if err := s.msgRepo.DeleteByCommunity(ctx, communityID); err != nil {
		log.Error().Err(err).Uint64("community_id", communityID).
			Msg("cascade delete: messages failed")
	}

	if err := s.repo.DeleteByID(ctx, communityID); err != nil {
		log.Error().Err(err).Uint64("community_id", communityID).
			Msg("cascade delete: community row failed")
	}

	s.ledger.record(ctx, "community_delete", actingUserID, communityID)
	return nil
}

func (s *CommunityService) ListMembers(ctx context.Context, communityID, requestingUserID uint64) ([]MemberView, error) {
	req, err := s.ledger.GetMembership(ctx, communityID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, pkg.Forbidden("membership required")
	}

	members, err := s.ledger.ListMemberships(ctx, communityID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		// 拿不到资料就全部用占位名
		log.Warn().Err(err).Msg("profile join unavailable, using placeholder names")
		users = map[uint64]model.User{}
	}

	views := make([]MemberView, 0, len(members))
	for _, m := range members {
		v := MemberView{
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.CreatedAt,
		}
		if u, ok := users[m.UserID]; ok {
			v.DisplayName = u.DisplayName
			if v.DisplayName == "" {
				v.DisplayName = u.Username
			}
			v.AvatarURL = u.AvatarURL
		} else {
			v.DisplayName = placeholderName(m.UserID)
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *CommunityService) ListCommunities(ctx context.Context, page, size int) ([]model.Community, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}

	offset := (page - 1) * size
	list, err := s.repo.List(ctx, offset, size)
	if err != nil {
		return nil, err
	}
	// 空结果返回空数组不是null
	if list == nil {
		list = []model.Community{}
	}
	return list, nil
}

// placeholderName 资料缺失时的兜底展示名：User + ID后四位
func placeholderName(userID uint64) string {
	id := strconv.FormatUint(userID, 10)
	if len(id) > 4 {
		id = id[len(id)-4:]
	}
	return "User " + id
}
