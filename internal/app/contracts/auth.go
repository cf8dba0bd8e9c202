package contracts

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, sess *session.Session, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sess *session.Session) error
}
