package chatService

import (
	"context"

	"github.com/sirupsen/logrus"

	"rtlmac/internal/api/chat"
	chatRepository "rtlmac/internal/api/chat/repository"
	"rtlmac/pkg/fanniemae"
	"rtlmac/pkg/intent"
	"rtlmac/pkg/utils"
)

type IChatService interface {
	HandleQuery(ctx context.Context, req chat.QueryRequest) (*chat.QueryResponse, error)
	Catalog() chat.CatalogResponse
}

type chatService struct {
	log        *logrus.Logger
	classifier intent.IClassifier
	provider   fanniemae.IFannieMae
	chatRepo   chatRepository.Repository
	utils      utils.IUtils
}

func New(
	log *logrus.Logger,
	classifier intent.IClassifier,
	provider fanniemae.IFannieMae,
	chatRepo chatRepository.Repository,
	utils utils.IUtils,
) IChatService {
	return &chatService{
		log:        log,
		classifier: classifier,
		provider:   provider,
		chatRepo:   chatRepo,
		utils:      utils,
	}
}
