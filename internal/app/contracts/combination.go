package contracts

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/dto/requests"
	"context"
)

type CombinationUsecase interface {
	ListCombinations(ctx context.Context, sess *session.Session) ([]care_dto.Combination, error)
	CreateCombination(ctx context.Context, sess *session.Session, request *requests.CreateCombination) (*care_dto.Combination, error)
	CreateCombinationInGroup(ctx context.Context, sess *session.Session, request *requests.CreateCombinationInGroup) (*care_dto.Combination, error)
	UpdateCombination(ctx context.Context, sess *session.Session, request *requests.UpdateCombination) (*care_dto.Combination, error)
	DeleteCombination(ctx context.Context, sess *session.Session, combinationID string) error
}

type CombinationCareClient interface {
	ListCombinations(ctx context.Context, sess *session.Session) ([]care_dto.Combination, error)
	CreateCombination(ctx context.Context, sess *session.Session, request *care_dto.Combination) (*care_dto.Combination, error)
	UpdateCombination(ctx context.Context, sess *session.Session, request *care_dto.Combination) (*care_dto.Combination, error)
	DeleteCombination(ctx context.Context, sess *session.Session, combinationID string) error
	AddCombinationToGroup(ctx context.Context, sess *session.Session, groupID, combinationID string) error
}
