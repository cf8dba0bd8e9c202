package combinations

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/cache"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"context"
	"errors"

	"go.uber.org/zap"
)

type combinationUsecase struct {
	CareClient  contracts.CombinationCareClient
	Cache       contracts.QueryCache
	Invalidator contracts.Invalidator
	Log         *zap.Logger
}

func NewCombinationUsecase(
	careClient contracts.CombinationCareClient,
	queryCache contracts.QueryCache,
	invalidator contracts.Invalidator,
	logger *zap.Logger,
) contracts.CombinationUsecase {
	return &combinationUsecase{
		CareClient:  careClient,
		Cache:       queryCache,
		Invalidator: invalidator,
		Log:         logger,
	}
}

func toCareCombination(id, name string, analyses []requests.Analysis) *care_dto.Combination {
	utils.SanitizeCombinationAnalyses(analyses)
	combination := &care_dto.Combination{
		ID:       id,
		Name:     name,
		Analyses: make([]care_dto.Analysis, 0, len(analyses)),
	}
	for _, analysis := range analyses {
		combination.Analyses = append(combination.Analyses, care_dto.Analysis{
			Name:  analysis.Name,
			Price: analysis.Price,
		})
		combination.Price += analysis.Price
	}
	return combination
}

func (uc *combinationUsecase) ListCombinations(ctx context.Context, sess *session.Session) ([]care_dto.Combination, error) {
	uc.Log.Info("combinationUsecase.ListCombinations called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	return cache.Fetch(ctx, uc.Cache, sess, uc.Log,
		cache.Key(constvars.ResourceCombinations, "all"),
		[]contracts.CacheTag{cache.GlobalTag(constvars.ResourceCombinations)},
		func(ctx context.Context) ([]care_dto.Combination, error) {
			return uc.CareClient.ListCombinations(ctx, sess)
		},
	)
}

func (uc *combinationUsecase) CreateCombination(ctx context.Context, sess *session.Session, request *requests.CreateCombination) (*care_dto.Combination, error) {
	uc.Log.Info("combinationUsecase.CreateCombination called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	combination, err := uc.CareClient.CreateCombination(ctx, sess, toCareCombination("", request.Name, request.Analyses))
	if err != nil {
		uc.Log.Error("combinationUsecase.CreateCombination error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.afterMutation(ctx, constvars.MutationActionCreate, combination.ID)
	return combination, nil
}

// CreateCombinationInGroup creates the combination and then attaches it to the
// group. When attaching fails the fresh combination is deleted again so no
// orphan stays behind; a failed delete is reported next to the original error.
func (uc *combinationUsecase) CreateCombinationInGroup(ctx context.Context, sess *session.Session, request *requests.CreateCombinationInGroup) (*care_dto.Combination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("combinationUsecase.CreateCombinationInGroup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGroupIDKey, request.GroupID),
	)

	combination, err := uc.CareClient.CreateCombination(ctx, sess, toCareCombination("", request.Name, request.Analyses))
	if err != nil {
		uc.Log.Error("combinationUsecase.CreateCombinationInGroup error creating combination",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.CareClient.AddCombinationToGroup(ctx, sess, request.GroupID, combination.ID)
	if err != nil {
		uc.Log.Error("combinationUsecase.CreateCombinationInGroup error adding to group, compensating",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceIDKey, combination.ID),
			zap.String(constvars.LoggingGroupIDKey, request.GroupID),
			zap.Error(err),
		)

		compensationErr := uc.CareClient.DeleteCombination(context.WithoutCancel(ctx), sess, combination.ID)
		if compensationErr != nil {
			uc.Log.Error("combinationUsecase.CreateCombinationInGroup compensation failed, orphan combination left",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceIDKey, combination.ID),
				zap.Error(compensationErr),
			)
			// The orphan is visible in the list, so drop the cached one.
			uc.afterMutation(ctx, constvars.MutationActionCreate, combination.ID)
			return nil, exceptions.ErrCompensationFailed(errors.Join(err, compensationErr), constvars.ResourceCombinations, combination.ID)
		}
		return nil, err
	}

	uc.afterMutation(ctx, constvars.MutationActionCreate, combination.ID)
	combination.GroupID = request.GroupID
	uc.Log.Info("combinationUsecase.CreateCombinationInGroup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, combination.ID),
	)
	return combination, nil
}

func (uc *combinationUsecase) UpdateCombination(ctx context.Context, sess *session.Session, request *requests.UpdateCombination) (*care_dto.Combination, error) {
	uc.Log.Info("combinationUsecase.UpdateCombination called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, request.CombinationID),
	)

	combination, err := uc.CareClient.UpdateCombination(ctx, sess, toCareCombination(request.CombinationID, request.Name, request.Analyses))
	if err != nil {
		uc.Log.Error("combinationUsecase.UpdateCombination error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.afterMutation(ctx, constvars.MutationActionUpdate, request.CombinationID)
	return combination, nil
}

func (uc *combinationUsecase) DeleteCombination(ctx context.Context, sess *session.Session, combinationID string) error {
	uc.Log.Info("combinationUsecase.DeleteCombination called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, combinationID),
	)

	err := uc.CareClient.DeleteCombination(ctx, sess, combinationID)
	if err != nil {
		uc.Log.Error("combinationUsecase.DeleteCombination error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingResourceIDKey, combinationID),
			zap.Error(err),
		)
		return err
	}

	uc.afterMutation(ctx, constvars.MutationActionDelete, combinationID)
	return nil
}

func (uc *combinationUsecase) afterMutation(ctx context.Context, action, combinationID string) {
	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     action,
		Resource:   constvars.ResourceCombinations,
		ResourceID: combinationID,
	}, cache.GlobalTag(constvars.ResourceCombinations))
}
