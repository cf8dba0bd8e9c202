package contracts

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/dto/responses"
	"context"
)

type SpecificationUsecase interface {
	FetchActiveSpecification(ctx context.Context, sess *session.Session, patientID string) (*responses.Specification, error)
	FetchSpecificationHistory(ctx context.Context, sess *session.Session, patientID string) (*responses.SpecificationHistory, error)
	FetchSpecificationByID(ctx context.Context, sess *session.Session, patientID, specificationID string) (*responses.SpecificationDetail, error)
	AddCosts(ctx context.Context, sess *session.Session, request *requests.AddCosts) error
	FetchFuturePeriods(ctx context.Context, sess *session.Session, patientID string) ([]responses.PeriodGroup, error)
	ExportPeriods(ctx context.Context, sess *session.Session, request *requests.ExportSpecifications) (*responses.ExportFile, error)
	StoreExport(ctx context.Context, sess *session.Session, request *requests.ExportSpecifications) (*responses.StoredExport, error)
}

type SpecificationCareClient interface {
	FindActiveSpecification(ctx context.Context, sess *session.Session, patientID string) (*care_dto.Specification, error)
	FindSpecificationHistory(ctx context.Context, sess *session.Session, patientID string) (*care_dto.SpecificationHistory, error)
	FindSpecificationByID(ctx context.Context, sess *session.Session, specificationID string) (*care_dto.Specification, error)
	AddCosts(ctx context.Context, sess *session.Session, specificationID string, request *care_dto.AddCostsPayload) error
	FindFuturePeriods(ctx context.Context, sess *session.Session, patientID string) ([]care_dto.Period, error)
}

// SpecificationExporter renders year-grouped specifications into a downloadable file.
type SpecificationExporter interface {
	Format() string
	ContentType() string
	Build(patientID string, years []responses.SpecificationYear) ([]byte, error)
}
