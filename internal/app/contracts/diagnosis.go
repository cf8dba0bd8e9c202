package contracts

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/dto/requests"
	"context"
)

type DiagnosisUsecase interface {
	ListDiagnoses(ctx context.Context, sess *session.Session, patientID string) ([]care_dto.Diagnosis, error)
	CreateDiagnosis(ctx context.Context, sess *session.Session, request *requests.CreateDiagnosis) (*care_dto.Diagnosis, error)
	UpdateDiagnosis(ctx context.Context, sess *session.Session, request *requests.UpdateDiagnosis) (*care_dto.Diagnosis, error)
	DeleteDiagnosis(ctx context.Context, sess *session.Session, patientID, diagnosisID string) error
}

type DiagnosisCareClient interface {
	ListDiagnoses(ctx context.Context, sess *session.Session, patientID string) ([]care_dto.Diagnosis, error)
	CreateDiagnosis(ctx context.Context, sess *session.Session, request *care_dto.Diagnosis) (*care_dto.Diagnosis, error)
	UpdateDiagnosis(ctx context.Context, sess *session.Session, request *care_dto.Diagnosis) (*care_dto.Diagnosis, error)
	DeleteDiagnosis(ctx context.Context, sess *session.Session, diagnosisID string) error
}
