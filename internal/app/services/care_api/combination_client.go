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

type combinationCareClient struct {
	*resourceClient[care_dto.Combination]
}

func NewCombinationCareClient(transport *Transport, logger *zap.Logger) contracts.CombinationCareClient {
	return &combinationCareClient{
		resourceClient: newResourceClient[care_dto.Combination](transport, constvars.ResourceCombinations, logger),
	}
}

func (c *combinationCareClient) ListCombinations(ctx context.Context, sess *session.Session) ([]care_dto.Combination, error) {
	c.Log.Info("combinationCareClient.ListCombinations called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.list(ctx, sess, nil)
}

func (c *combinationCareClient) CreateCombination(ctx context.Context, sess *session.Session, request *care_dto.Combination) (*care_dto.Combination, error) {
	c.Log.Info("combinationCareClient.CreateCombination called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.create(ctx, sess, request)
}

func (c *combinationCareClient) UpdateCombination(ctx context.Context, sess *session.Session, request *care_dto.Combination) (*care_dto.Combination, error) {
	c.Log.Info("combinationCareClient.UpdateCombination called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, request.ID),
	)
	return c.update(ctx, sess, request.ID, request)
}

func (c *combinationCareClient) DeleteCombination(ctx context.Context, sess *session.Session, combinationID string) error {
	c.Log.Info("combinationCareClient.DeleteCombination called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, combinationID),
	)
	return c.delete(ctx, sess, combinationID)
}

func (c *combinationCareClient) AddCombinationToGroup(ctx context.Context, sess *session.Session, groupID, combinationID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("combinationCareClient.AddCombinationToGroup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGroupIDKey, groupID),
		zap.String(constvars.LoggingResourceIDKey, combinationID),
	)

	_, err := c.Transport.Do(ctx, Call{
		Method:   constvars.MethodPost,
		Path:     fmt.Sprintf(constvars.CarePathCombinationGroup, url.PathEscape(groupID)),
		Body:     &care_dto.AddCombinationToGroup{CombinationID: combinationID},
		Resource: c.Resource,
		Session:  sess,
	}, nil)
	if err != nil {
		return err
	}

	c.Log.Info("combinationCareClient.AddCombinationToGroup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGroupIDKey, groupID),
	)
	return nil
}
