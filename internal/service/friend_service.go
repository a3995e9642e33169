package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"
	"Hive_Social/internal/repository/mysql"

	"gorm.io/gorm"
)

const (
	FriendStatusFriends         = "friends"
	FriendStatusRequestSent     = "request_sent"
	FriendStatusRequestReceived = "request_received"
	FriendStatusNone            = "none"
)

type FriendService struct {
	repo  *mysql.FriendRepository
	users *mysql.UserRepository
}

// FriendView 好友列表展示项：好友关系ID + 对方资料
type FriendView struct {
	FriendshipID uint64    `json:"friendship_id"`
	UserID       uint64    `json:"user_id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	AvatarURL    string    `json:"avatar_url"`
	Since        time.Time `json:"since"`
}

// RequestView 收到的申请展示项
type RequestView struct {
	RequestID   uint64    `json:"request_id"`
	SenderID    uint64    `json:"sender_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewFriendService(db *gorm.DB) *FriendService {
	return &FriendService{
		repo:  &mysql.FriendRepository{DB: db},
		users: &mysql.UserRepository{DB: db},
	}
}

// SendRequest 发申请。已是好友或两人之间已有任意状态的申请行都算冲突，
// 被拒绝过的申请会一直挡住重发。
func (s *FriendService) SendRequest(ctx context.Context, senderID uint64, receiverUsername string) (*model.FriendRequest, error) {
	receiverUsername = strings.TrimSpace(receiverUsername)
	if receiverUsername == "" {
		return nil, pkg.Validation("username required")
	}

	receiver, err := s.users.FindByUsername(ctx, receiverUsername)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFoundErr("user not found")
		}
		return nil, err
	}
	if receiver.ID == senderID {
		return nil, pkg.Validation("cannot send a friend request to yourself")
	}

	if _, err := s.repo.FindFriendship(ctx, senderID, receiver.ID); err == nil {
		return nil, pkg.Conflict("already friends")
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return nil, err
	}

	if _, err := s.repo.FindRequestBetween(ctx, senderID, receiver.ID); err == nil {
		return nil, pkg.Conflict("friend request already exists")
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return nil, err
	}

	req := &model.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		Status:     model.FriendRequestPending,
	}
	if err := s.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// AcceptRequest 接受后在同一事务里落好友关系行
func (s *FriendService) AcceptRequest(ctx context.Context, requestID, receiverID uint64) (*model.Friendship, error) {
	fs, err := s.repo.AcceptRequest(ctx, requestID, receiverID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFoundErr("friend request not found")
		}
		return nil, err
	}
	return fs, nil
}

func (s *FriendService) RejectRequest(ctx context.Context, requestID, receiverID uint64) error {
	if err := s.repo.RejectRequest(ctx, requestID, receiverID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return pkg.NotFoundErr("friend request not found")
		}
		return err
	}
	return nil
}

// CancelRequest 仅发送者可撤回pending申请
func (s *FriendService) CancelRequest(ctx context.Context, requestID, senderID uint64) error {
	if err := s.repo.CancelRequest(ctx, requestID, senderID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return pkg.NotFoundErr("friend request not found")
		}
		return err
	}
	return nil
}

func (s *FriendService) ListFriends(ctx context.Context, userID uint64) ([]FriendView, error) {
	friendships, err := s.repo.ListFriendships(ctx, userID)
	if err != nil {
		return nil, err
	}

	otherIDs := make([]uint64, 0, len(friendships))
	for _, fs := range friendships {
		otherIDs = append(otherIDs, otherSide(fs, userID))
	}
	users, err := s.users.FindByIDs(ctx, otherIDs)
	if err != nil {
		return nil, err
	}

	views := make([]FriendView, 0, len(friendships))
	for _, fs := range friendships {
		other := otherSide(fs, userID)
		v := FriendView{
			FriendshipID: fs.ID,
			UserID:       other,
			Since:        fs.CreatedAt,
		}
		if u, ok := users[other]; ok {
			v.Username = u.Username
			v.DisplayName = u.DisplayName
			v.AvatarURL = u.AvatarURL
		} else {
			v.DisplayName = placeholderName(other)
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *FriendService) ListIncoming(ctx context.Context, receiverID uint64) ([]RequestView, error) {
	reqs, err := s.repo.ListIncoming(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.SenderID)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]RequestView, 0, len(reqs))
	for _, r := range reqs {
		v := RequestView{
			RequestID: r.ID,
			SenderID:  r.SenderID,
			CreatedAt: r.CreatedAt,
		}
		if u, ok := users[r.SenderID]; ok {
			v.Username = u.Username
			v.DisplayName = u.DisplayName
			v.AvatarURL = u.AvatarURL
		} else {
			v.DisplayName = placeholderName(r.SenderID)
		}
		views = append(views, v)
	}
	return views, nil
}

// FriendshipStatus 优先级：已是好友 > 我发的pending > 对方发的pending > 无
func (s *FriendService) FriendshipStatus(ctx context.Context, userID uint64, otherUsername string) (string, error) {
	other, err := s.users.FindByUsername(ctx, strings.TrimSpace(otherUsername))
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return "", pkg.NotFoundErr("user not found")
		}
		return "", err
	}

	if _, err := s.repo.FindFriendship(ctx, userID, other.ID); err == nil {
		return FriendStatusFriends, nil
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return "", err
	}

	if _, err := s.repo.FindPending(ctx, userID, other.ID); err == nil {
		return FriendStatusRequestSent, nil
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return "", err
	}

	if _, err := s.repo.FindPending(ctx, other.ID, userID); err == nil {
		return FriendStatusRequestReceived, nil
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return "", err
	}

	return FriendStatusNone, nil
}

func otherSide(fs model.Friendship, userID uint64) uint64 {
	if fs.UserLowID == userID {
		return fs.UserHighID
	}
	return fs.UserLowID
}
