package patients

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

type patientUsecase struct {
	CareClient  contracts.PatientCareClient
	Cache       contracts.QueryCache
	Invalidator contracts.Invalidator
	Log         *zap.Logger
}

func NewPatientUsecase(
	careClient contracts.PatientCareClient,
	queryCache contracts.QueryCache,
	invalidator contracts.Invalidator,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		CareClient:  careClient,
		Cache:       queryCache,
		Invalidator: invalidator,
		Log:         logger,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context, sess *session.Session) ([]care_dto.Patient, error) {
	uc.Log.Info("patientUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	return cache.Fetch(ctx, uc.Cache, sess, uc.Log,
		cache.Key(constvars.ResourcePatients, "all"),
		[]contracts.CacheTag{cache.GlobalTag(constvars.ResourcePatients)},
		func(ctx context.Context) ([]care_dto.Patient, error) {
			return uc.CareClient.ListPatients(ctx, sess)
		},
	)
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, sess *session.Session, patientID string) (*care_dto.Patient, error) {
	uc.Log.Info("patientUsecase.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	return cache.Fetch(ctx, uc.Cache, sess, uc.Log,
		cache.Key(constvars.ResourcePatients, "id", patientID),
		[]contracts.CacheTag{cache.GlobalTag(constvars.ResourcePatients), cache.PatientTag(constvars.ResourcePatients, patientID)},
		func(ctx context.Context) (*care_dto.Patient, error) {
			return uc.CareClient.FindPatientByID(ctx, sess, patientID)
		},
	)
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, sess *session.Session, request *requests.CreatePatient) (*care_dto.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeCreatePatientRequest(request)
	patient, err := uc.CareClient.CreatePatient(ctx, sess, &care_dto.Patient{
		Name:          request.Name,
		LastName:      request.LastName,
		BirthDate:     request.BirthDate,
		AdmissionDate: request.AdmissionDate,
		Address:       request.Address,
	})
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionCreate,
		Resource:   constvars.ResourcePatients,
		ResourceID: patient.ID,
		PatientID:  patient.ID,
	}, cache.GlobalTag(constvars.ResourcePatients))
	return patient, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, sess *session.Session, request *requests.UpdatePatient) (*care_dto.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	utils.SanitizeUpdatePatientRequest(request)
	patient, err := uc.CareClient.UpdatePatient(ctx, sess, &care_dto.Patient{
		ID:            request.PatientID,
		Name:          request.Name,
		LastName:      request.LastName,
		BirthDate:     request.BirthDate,
		AdmissionDate: request.AdmissionDate,
		Address:       request.Address,
	})
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionUpdate,
		Resource:   constvars.ResourcePatients,
		ResourceID: request.PatientID,
		PatientID:  request.PatientID,
	}, cache.GlobalTag(constvars.ResourcePatients))
	return patient, nil
}

// DischargePatient also drops the patient's specifications: the backend closes
// the open one when it records the discharge date.
func (uc *patientUsecase) DischargePatient(ctx context.Context, sess *session.Session, request *requests.DischargePatient) (*care_dto.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.DischargePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	patient, err := uc.CareClient.DischargePatient(ctx, sess, request.PatientID, &care_dto.DischargePatient{
		DischargeDate: request.DischargeDate,
	})
	if err != nil {
		uc.Log.Error("patientUsecase.DischargePatient error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionDischarge,
		Resource:   constvars.ResourcePatients,
		ResourceID: request.PatientID,
		PatientID:  request.PatientID,
	},
		cache.GlobalTag(constvars.ResourcePatients),
		cache.PatientTag(constvars.ResourceSpecifications, request.PatientID),
	)
	return patient, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, sess *session.Session, patientID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	err := uc.CareClient.DeletePatient(ctx, sess, patientID)
	if err != nil {
		return err
	}

	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionDelete,
		Resource:   constvars.ResourcePatients,
		ResourceID: patientID,
		PatientID:  patientID,
	},
		cache.GlobalTag(constvars.ResourcePatients),
		cache.PatientTag(constvars.ResourceMedicines, patientID),
		cache.PatientTag(constvars.ResourceArticles, patientID),
		cache.PatientTag(constvars.ResourceDiagnoses, patientID),
		cache.PatientTag(constvars.ResourceReserves, patientID),
		cache.PatientTag(constvars.ResourceSpecifications, patientID),
	)
	return nil
}
