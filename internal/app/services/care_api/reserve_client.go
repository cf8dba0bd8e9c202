package care_api

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type reserveCareClient struct {
	*resourceClient[care_dto.ReserveEntry]
}

func NewReserveCareClient(transport *Transport, logger *zap.Logger) contracts.ReserveCareClient {
	return &reserveCareClient{
		resourceClient: newResourceClient[care_dto.ReserveEntry](transport, constvars.ResourceReserves, logger),
	}
}

func (c *reserveCareClient) ListReserves(ctx context.Context, sess *session.Session, patientID string) ([]care_dto.ReserveEntry, error) {
	c.Log.Info("reserveCareClient.ListReserves called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return c.list(ctx, sess, patientQuery(patientID))
}

func (c *reserveCareClient) CreateReserve(ctx context.Context, sess *session.Session, request *care_dto.ReserveEntry) (*care_dto.ReserveEntry, error) {
	c.Log.Info("reserveCareClient.CreateReserve called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)
	return c.create(ctx, sess, request)
}
