package contracts

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/dto/requests"
	"context"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, sess *session.Session) ([]care_dto.Patient, error)
	FindPatientByID(ctx context.Context, sess *session.Session, patientID string) (*care_dto.Patient, error)
	CreatePatient(ctx context.Context, sess *session.Session, request *requests.CreatePatient) (*care_dto.Patient, error)
	UpdatePatient(ctx context.Context, sess *session.Session, request *requests.UpdatePatient) (*care_dto.Patient, error)
	DischargePatient(ctx context.Context, sess *session.Session, request *requests.DischargePatient) (*care_dto.Patient, error)
	DeletePatient(ctx context.Context, sess *session.Session, patientID string) error
}

type PatientCareClient interface {
	ListPatients(ctx context.Context, sess *session.Session) ([]care_dto.Patient, error)
	FindPatientByID(ctx context.Context, sess *session.Session, patientID string) (*care_dto.Patient, error)
	CreatePatient(ctx context.Context, sess *session.Session, request *care_dto.Patient) (*care_dto.Patient, error)
	UpdatePatient(ctx context.Context, sess *session.Session, request *care_dto.Patient) (*care_dto.Patient, error)
	DischargePatient(ctx context.Context, sess *session.Session, patientID string, request *care_dto.DischargePatient) (*care_dto.Patient, error)
	DeletePatient(ctx context.Context, sess *session.Session, patientID string) error
}
