package service

import (
	"context"
	"strings"

	"Hive_Social/internal/model"
	"Hive_Social/internal/pkg"
	"Hive_Social/internal/repository/mysql"

	"gorm.io/gorm"
)

type MessageService struct {
	repo   *mysql.MessageRepository
	ledger *MembershipLedger
}

func NewMessageService(db *gorm.DB, ledger *MembershipLedger) *MessageService {
	return &MessageService{
		repo:   &mysql.MessageRepository{DB: db},
		ledger: ledger,
	}
}

func (s *MessageService) CreateMessage(ctx context.Context, userID, communityID uint64, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, pkg.Validation("content required")
	}

	// 仅成员可发
	m, err := s.ledger.GetMembership(ctx, communityID, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, pkg.Forbidden("membership required")
	}

	msg := &model.Message{
		CommunityID: communityID,
		AuthorID:    userID,
		Content:     content,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) ListByCommunity(ctx context.Context, communityID uint64, page, size int) ([]model.Message, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}

	offset := (page - 1) * size
	list, err := s.repo.ListByCommunity(ctx, communityID, offset, size)
	if err != nil {
		return nil, err
	}
	// 空结果返回空数组不是null
	if list == nil {
		list = []model.Message{}
	}
	return list, nil
}
