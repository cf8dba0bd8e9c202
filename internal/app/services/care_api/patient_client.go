package care_api

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

type patientCareClient struct {
	*resourceClient[care_dto.Patient]
}

func NewPatientCareClient(transport *Transport, logger *zap.Logger) contracts.PatientCareClient {
	return &patientCareClient{
		resourceClient: newResourceClient[care_dto.Patient](transport, constvars.ResourcePatients, logger),
	}
}

func (c *patientCareClient) ListPatients(ctx context.Context, sess *session.Session) ([]care_dto.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientCareClient.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := c.list(ctx, sess, nil)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientCareClient.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientCareClient) FindPatientByID(ctx context.Context, sess *session.Session, patientID string) (*care_dto.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientCareClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return c.get(ctx, sess, patientID)
}

func (c *patientCareClient) CreatePatient(ctx context.Context, sess *session.Session, request *care_dto.Patient) (*care_dto.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientCareClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient, err := c.create(ctx, sess, request)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientCareClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (c *patientCareClient) UpdatePatient(ctx context.Context, sess *session.Session, request *care_dto.Patient) (*care_dto.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientCareClient.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.ID),
	)
	return c.update(ctx, sess, request.ID, request)
}

func (c *patientCareClient) DischargePatient(ctx context.Context, sess *session.Session, patientID string, request *care_dto.DischargePatient) (*care_dto.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientCareClient.DischargePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient := new(care_dto.Patient)
	_, err := c.Transport.Do(ctx, Call{
		Method:   constvars.MethodPatch,
		Path:     fmt.Sprintf(constvars.CarePathPatientDischarge, url.PathEscape(patientID)),
		Body:     request,
		Resource: c.Resource,
		Session:  sess,
	}, patient)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientCareClient.DischargePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patient, nil
}

func (c *patientCareClient) DeletePatient(ctx context.Context, sess *session.Session, patientID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientCareClient.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return c.delete(ctx, sess, patientID)
}
