package care_api

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

type specificationCareClient struct {
	Transport *Transport
	Log       *zap.Logger
}

func NewSpecificationCareClient(transport *Transport, logger *zap.Logger) contracts.SpecificationCareClient {
	return &specificationCareClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *specificationCareClient) get(ctx context.Context, sess *session.Session, path string, out interface{}) error {
	_, err := c.Transport.Do(ctx, Call{
		Method:   constvars.MethodGet,
		Path:     path,
		Resource: constvars.ResourceSpecifications,
		Session:  sess,
	}, out)
	return err
}

func (c *specificationCareClient) FindActiveSpecification(ctx context.Context, sess *session.Session, patientID string) (*care_dto.Specification, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("specificationCareClient.FindActiveSpecification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	specification := new(care_dto.Specification)
	err := c.get(ctx, sess, fmt.Sprintf(constvars.CarePathActiveSpecification, url.PathEscape(patientID)), specification)
	if err != nil {
		return nil, err
	}
	if specification.ID == "" {
		return nil, exceptions.ErrCareResourceNotFound(nil, constvars.ResourceSpecifications)
	}

	c.Log.Info("specificationCareClient.FindActiveSpecification succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecificationIDKey, specification.ID),
		zap.Int(constvars.LoggingCountKey, len(specification.Items)),
	)
	return specification, nil
}

func (c *specificationCareClient) FindSpecificationHistory(ctx context.Context, sess *session.Session, patientID string) (*care_dto.SpecificationHistory, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("specificationCareClient.FindSpecificationHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	history := new(care_dto.SpecificationHistory)
	err := c.get(ctx, sess, fmt.Sprintf(constvars.CarePathSpecificationHistory, url.PathEscape(patientID)), history)
	if err != nil {
		return nil, err
	}

	c.Log.Info("specificationCareClient.FindSpecificationHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(history.History)),
	)
	return history, nil
}

func (c *specificationCareClient) FindSpecificationByID(ctx context.Context, sess *session.Session, specificationID string) (*care_dto.Specification, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("specificationCareClient.FindSpecificationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecificationIDKey, specificationID),
	)

	specification := new(care_dto.Specification)
	err := c.get(ctx, sess, fmt.Sprintf(constvars.CarePathSpecificationByID, url.PathEscape(specificationID)), specification)
	if err != nil {
		return nil, err
	}
	if specification.ID == "" {
		return nil, exceptions.ErrCareResourceNotFound(nil, constvars.ResourceSpecifications)
	}
	return specification, nil
}

func (c *specificationCareClient) AddCosts(ctx context.Context, sess *session.Session, specificationID string, request *care_dto.AddCostsPayload) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("specificationCareClient.AddCosts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecificationIDKey, specificationID),
	)

	_, err := c.Transport.Do(ctx, Call{
		Method:   constvars.MethodPatch,
		Path:     fmt.Sprintf(constvars.CarePathSpecificationAddCosts, url.PathEscape(specificationID)),
		Body:     request,
		Resource: constvars.ResourceSpecifications,
		Session:  sess,
	}, nil)
	if err != nil {
		return err
	}

	c.Log.Info("specificationCareClient.AddCosts succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecificationIDKey, specificationID),
	)
	return nil
}

func (c *specificationCareClient) FindFuturePeriods(ctx context.Context, sess *session.Session, patientID string) ([]care_dto.Period, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("specificationCareClient.FindFuturePeriods called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	periods := make([]care_dto.Period, 0)
	err := c.get(ctx, sess, fmt.Sprintf(constvars.CarePathSpecificationFuturePlan, url.PathEscape(patientID)), &periods)
	if err != nil {
		return nil, err
	}
	return periods, nil
}
