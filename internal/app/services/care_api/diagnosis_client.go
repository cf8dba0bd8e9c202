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

type diagnosisCareClient struct {
	*resourceClient[care_dto.Diagnosis]
}

func NewDiagnosisCareClient(transport *Transport, logger *zap.Logger) contracts.DiagnosisCareClient {
	return &diagnosisCareClient{
		resourceClient: newResourceClient[care_dto.Diagnosis](transport, constvars.ResourceDiagnoses, logger),
	}
}

func (c *diagnosisCareClient) ListDiagnoses(ctx context.Context, sess *session.Session, patientID string) ([]care_dto.Diagnosis, error) {
	c.Log.Info("diagnosisCareClient.ListDiagnoses called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return c.list(ctx, sess, patientQuery(patientID))
}

func (c *diagnosisCareClient) CreateDiagnosis(ctx context.Context, sess *session.Session, request *care_dto.Diagnosis) (*care_dto.Diagnosis, error) {
	c.Log.Info("diagnosisCareClient.CreateDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)
	return c.create(ctx, sess, request)
}

func (c *diagnosisCareClient) UpdateDiagnosis(ctx context.Context, sess *session.Session, request *care_dto.Diagnosis) (*care_dto.Diagnosis, error) {
	c.Log.Info("diagnosisCareClient.UpdateDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, request.ID),
	)
	return c.update(ctx, sess, request.ID, request)
}

func (c *diagnosisCareClient) DeleteDiagnosis(ctx context.Context, sess *session.Session, diagnosisID string) error {
	c.Log.Info("diagnosisCareClient.DeleteDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, diagnosisID),
	)
	return c.delete(ctx, sess, diagnosisID)
}
