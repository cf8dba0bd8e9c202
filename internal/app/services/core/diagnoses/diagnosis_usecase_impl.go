package diagnoses

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/services/shared/cache"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type diagnosisUsecase struct {
	CareClient  contracts.DiagnosisCareClient
	Cache       contracts.QueryCache
	Invalidator contracts.Invalidator
	Log         *zap.Logger
}

func NewDiagnosisUsecase(
	careClient contracts.DiagnosisCareClient,
	queryCache contracts.QueryCache,
	invalidator contracts.Invalidator,
	logger *zap.Logger,
) contracts.DiagnosisUsecase {
	return &diagnosisUsecase{
		CareClient:  careClient,
		Cache:       queryCache,
		Invalidator: invalidator,
		Log:         logger,
	}
}

func (uc *diagnosisUsecase) ListDiagnoses(ctx context.Context, sess *session.Session, patientID string) ([]care_dto.Diagnosis, error) {
	uc.Log.Info("diagnosisUsecase.ListDiagnoses called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	return cache.Fetch(ctx, uc.Cache, sess, uc.Log,
		cache.Key(constvars.ResourceDiagnoses, patientID),
		[]contracts.CacheTag{cache.PatientTag(constvars.ResourceDiagnoses, patientID)},
		func(ctx context.Context) ([]care_dto.Diagnosis, error) {
			return uc.CareClient.ListDiagnoses(ctx, sess, patientID)
		},
	)
}

func (uc *diagnosisUsecase) CreateDiagnosis(ctx context.Context, sess *session.Session, request *requests.CreateDiagnosis) (*care_dto.Diagnosis, error) {
	diagnosis, err := uc.CareClient.CreateDiagnosis(ctx, sess, &care_dto.Diagnosis{
		PatientID:   request.PatientID,
		Code:        request.Code,
		Name:        request.Name,
		Description: request.Description,
		DiagnosedAt: request.DiagnosedAt,
	})
	if err != nil {
		uc.Log.Error("diagnosisUsecase.CreateDiagnosis error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionCreate,
		Resource:   constvars.ResourceDiagnoses,
		ResourceID: diagnosis.ID,
		PatientID:  request.PatientID,
	}, cache.PatientTag(constvars.ResourceDiagnoses, request.PatientID))
	return diagnosis, nil
}

func (uc *diagnosisUsecase) UpdateDiagnosis(ctx context.Context, sess *session.Session, request *requests.UpdateDiagnosis) (*care_dto.Diagnosis, error) {
	diagnosis, err := uc.CareClient.UpdateDiagnosis(ctx, sess, &care_dto.Diagnosis{
		ID:          request.DiagnosisID,
		PatientID:   request.PatientID,
		Code:        request.Code,
		Name:        request.Name,
		Description: request.Description,
		DiagnosedAt: request.DiagnosedAt,
	})
	if err != nil {
		uc.Log.Error("diagnosisUsecase.UpdateDiagnosis error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionUpdate,
		Resource:   constvars.ResourceDiagnoses,
		ResourceID: request.DiagnosisID,
		PatientID:  request.PatientID,
	}, cache.PatientTag(constvars.ResourceDiagnoses, request.PatientID))
	return diagnosis, nil
}

func (uc *diagnosisUsecase) DeleteDiagnosis(ctx context.Context, sess *session.Session, patientID, diagnosisID string) error {
	err := uc.CareClient.DeleteDiagnosis(ctx, sess, diagnosisID)
	if err != nil {
		return err
	}

	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionDelete,
		Resource:   constvars.ResourceDiagnoses,
		ResourceID: diagnosisID,
		PatientID:  patientID,
	}, cache.PatientTag(constvars.ResourceDiagnoses, patientID))
	return nil
}
