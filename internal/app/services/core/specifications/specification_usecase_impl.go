package specifications

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/app/observability/metrics"
	"carehome-service/internal/app/services/shared/cache"
	"carehome-service/internal/app/services/shared/exporter"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/dto/responses"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type specificationUsecase struct {
	CareClient      contracts.SpecificationCareClient
	Cache           contracts.QueryCache
	Invalidator     contracts.Invalidator
	ExportStorage   contracts.ExportStorage
	ExportURLExpiry time.Duration
	ExportOptions   exporter.Options
	Log             *zap.Logger
	now             func() time.Time
}

// NewSpecificationUsecase accepts a nil cache and a nil export storage; reads
// then always hit the backend and StoreExport reports that storage is missing.
func NewSpecificationUsecase(
	careClient contracts.SpecificationCareClient,
	queryCache contracts.QueryCache,
	invalidator contracts.Invalidator,
	exportStorage contracts.ExportStorage,
	exportURLExpiry time.Duration,
	exportOptions exporter.Options,
	logger *zap.Logger,
) contracts.SpecificationUsecase {
	return &specificationUsecase{
		CareClient:      careClient,
		Cache:           queryCache,
		Invalidator:     invalidator,
		ExportStorage:   exportStorage,
		ExportURLExpiry: exportURLExpiry,
		ExportOptions:   exportOptions,
		Log:             logger,
		now:             time.Now,
	}
}

func specificationTag(specificationID string) contracts.CacheTag {
	return contracts.CacheTag{Resource: constvars.ResourceSpecifications, Scope: "spec:" + specificationID}
}

func (uc *specificationUsecase) FetchActiveSpecification(ctx context.Context, sess *session.Session, patientID string) (*responses.Specification, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("specificationUsecase.FetchActiveSpecification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	raw, err := cache.Fetch(ctx, uc.Cache, sess, uc.Log,
		cache.Key(constvars.ResourceSpecifications, "active", patientID),
		[]contracts.CacheTag{cache.PatientTag(constvars.ResourceSpecifications, patientID)},
		func(ctx context.Context) (*care_dto.Specification, error) {
			return uc.CareClient.FindActiveSpecification(ctx, sess, patientID)
		},
	)
	if err != nil {
		uc.Log.Error("specificationUsecase.FetchActiveSpecification error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrLoadSpecification(err)
	}

	specification := toSpecification(raw)
	uc.Log.Info("specificationUsecase.FetchActiveSpecification succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecificationIDKey, specification.ID),
	)
	return &specification, nil
}

func (uc *specificationUsecase) FetchSpecificationHistory(ctx context.Context, sess *session.Session, patientID string) (*responses.SpecificationHistory, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("specificationUsecase.FetchSpecificationHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	raw, err := uc.fetchHistory(ctx, sess, patientID)
	if err != nil {
		uc.Log.Error("specificationUsecase.FetchSpecificationHistory error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrLoadSpecification(err)
	}

	response := &responses.SpecificationHistory{
		History: make([]responses.Specification, 0, len(raw.History)),
	}
	if raw.ActiveSpec != nil {
		active := toSpecification(raw.ActiveSpec)
		response.ActiveSpec = &active
	}
	for i := range raw.History {
		response.History = append(response.History, toSpecification(&raw.History[i]))
	}

	uc.Log.Info("specificationUsecase.FetchSpecificationHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response.History)),
	)
	return response, nil
}

func (uc *specificationUsecase) fetchHistory(ctx context.Context, sess *session.Session, patientID string) (*care_dto.SpecificationHistory, error) {
	return cache.Fetch(ctx, uc.Cache, sess, uc.Log,
		cache.Key(constvars.ResourceSpecifications, "history", patientID),
		[]contracts.CacheTag{cache.PatientTag(constvars.ResourceSpecifications, patientID)},
		func(ctx context.Context) (*care_dto.SpecificationHistory, error) {
			return uc.CareClient.FindSpecificationHistory(ctx, sess, patientID)
		},
	)
}

// FetchSpecificationByID registers the entry under the patient tag as well when
// patientID is known, so a patient wide eviction also drops it.
func (uc *specificationUsecase) FetchSpecificationByID(ctx context.Context, sess *session.Session, patientID, specificationID string) (*responses.SpecificationDetail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("specificationUsecase.FetchSpecificationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecificationIDKey, specificationID),
	)

	tags := []contracts.CacheTag{specificationTag(specificationID)}
	if patientID != "" {
		tags = append(tags, cache.PatientTag(constvars.ResourceSpecifications, patientID))
	}

	raw, err := cache.Fetch(ctx, uc.Cache, sess, uc.Log,
		cache.Key(constvars.ResourceSpecifications, "id", specificationID),
		tags,
		func(ctx context.Context) (*care_dto.Specification, error) {
			return uc.CareClient.FindSpecificationByID(ctx, sess, specificationID)
		},
	)
	if err != nil {
		uc.Log.Error("specificationUsecase.FetchSpecificationByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrLoadSpecification(err)
	}

	detail := &responses.SpecificationDetail{
		Specification:   toSpecification(raw),
		LodgingPrice:    floatOrZero(raw.LodgingPrice),
		ExtraCostAmount: floatOrZero(raw.ExtraCostAmount),
		ExtraCostLabel:  stringOrEmpty(raw.ExtraCostLabel),
	}
	return detail, nil
}

// AddCosts only submits. The new total is whatever the backend computes and is
// seen on the next read, which misses the cache because of the eviction here.
func (uc *specificationUsecase) AddCosts(ctx context.Context, sess *session.Session, request *requests.AddCosts) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("specificationUsecase.AddCosts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecificationIDKey, request.SpecificationID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	utils.SanitizeAddCostsRequest(request)
	err := uc.CareClient.AddCosts(ctx, sess, request.SpecificationID, &care_dto.AddCostsPayload{
		LodgingPrice:    request.LodgingPrice,
		ExtraCostAmount: request.ExtraCostAmount,
		ExtraCostLabel:  request.ExtraCostLabel,
	})
	if err != nil {
		uc.Log.Error("specificationUsecase.AddCosts error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	tags := []contracts.CacheTag{specificationTag(request.SpecificationID)}
	if request.PatientID != "" {
		tags = append(tags, cache.PatientTag(constvars.ResourceSpecifications, request.PatientID))
	}
	uc.Invalidator.AfterMutation(ctx, contracts.MutationEvent{
		Action:     constvars.MutationActionAddCosts,
		Resource:   constvars.ResourceSpecifications,
		ResourceID: request.SpecificationID,
		PatientID:  request.PatientID,
		ActorID:    actorID(sess),
	}, tags...)

	uc.Log.Info("specificationUsecase.AddCosts succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecificationIDKey, request.SpecificationID),
	)
	return nil
}

func (uc *specificationUsecase) FetchFuturePeriods(ctx context.Context, sess *session.Session, patientID string) ([]responses.PeriodGroup, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("specificationUsecase.FetchFuturePeriods called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	raw, err := cache.Fetch(ctx, uc.Cache, sess, uc.Log,
		cache.Key(constvars.ResourceSpecifications, "future-periods", patientID),
		[]contracts.CacheTag{cache.PatientTag(constvars.ResourceSpecifications, patientID)},
		func(ctx context.Context) ([]care_dto.Period, error) {
			return uc.CareClient.FindFuturePeriods(ctx, sess, patientID)
		},
	)
	if err != nil {
		uc.Log.Error("specificationUsecase.FetchFuturePeriods error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrLoadSpecification(err)
	}

	return SortedPeriodGroups(GroupPeriodsByYear(toPeriods(raw))), nil
}

// ExportPeriods renders the whole history of a patient, active specification
// included, with one section per start year.
func (uc *specificationUsecase) ExportPeriods(ctx context.Context, sess *session.Session, request *requests.ExportSpecifications) (*responses.ExportFile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("specificationUsecase.ExportPeriods called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingExportFormatKey, request.Format),
	)

	startTime := uc.now()
	specExporter, err := exporter.New(request.Format, uc.ExportOptions)
	if err != nil {
		return nil, err
	}

	raw, err := uc.fetchHistory(ctx, sess, request.PatientID)
	if err != nil {
		metrics.ObserveExport(request.Format, metrics.ResultError, time.Since(startTime))
		return nil, exceptions.ErrLoadSpecification(err)
	}

	specifications := make([]responses.Specification, 0, len(raw.History)+1)
	if raw.ActiveSpec != nil {
		specifications = append(specifications, toSpecification(raw.ActiveSpec))
	}
	for i := range raw.History {
		specifications = append(specifications, toSpecification(&raw.History[i]))
	}

	content, err := specExporter.Build(request.PatientID, groupSpecificationsByYear(specifications))
	if err != nil {
		metrics.ObserveExport(request.Format, metrics.ResultError, time.Since(startTime))
		uc.Log.Error("specificationUsecase.ExportPeriods error building export",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBuildExport(err, request.Format)
	}
	metrics.ObserveExport(request.Format, metrics.ResultSuccess, time.Since(startTime))

	uc.Log.Info("specificationUsecase.ExportPeriods succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(specifications)),
	)
	return &responses.ExportFile{
		FileName:    fmt.Sprintf("specifications-%s.%s", request.PatientID, specExporter.Format()),
		ContentType: specExporter.ContentType(),
		Content:     content,
	}, nil
}

func (uc *specificationUsecase) StoreExport(ctx context.Context, sess *session.Session, request *requests.ExportSpecifications) (*responses.StoredExport, error) {
	requestID := utils.GetRequestID(ctx)
	if uc.ExportStorage == nil {
		return nil, exceptions.ErrServerProcess(errors.New("export storage is not configured"))
	}

	file, err := uc.ExportPeriods(ctx, sess, request)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	objectName := utils.GenerateExportObjectName(request.PatientID, request.Format, now)
	err = uc.ExportStorage.PutExport(ctx, objectName, file.ContentType, file.Content)
	if err != nil {
		uc.Log.Error("specificationUsecase.StoreExport error uploading export",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	url, err := uc.ExportStorage.PresignedURL(ctx, objectName, uc.ExportURLExpiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("specificationUsecase.StoreExport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.StoredExport{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  now.Add(uc.ExportURLExpiry).UTC().Format(time.RFC3339),
	}, nil
}

func toSpecification(raw *care_dto.Specification) responses.Specification {
	return responses.Specification{
		ID:         raw.ID,
		PatientID:  raw.PatientID,
		StartDate:  raw.StartDate,
		EndDate:    stringOrEmpty(raw.EndDate),
		Items:      FormatItems(raw.Items),
		TotalPrice: floatOrZero(raw.TotalPrice),
	}
}

func actorID(sess *session.Session) string {
	if sess == nil {
		return ""
	}
	if user := sess.User(); user != nil {
		return user.ID
	}
	return ""
}
