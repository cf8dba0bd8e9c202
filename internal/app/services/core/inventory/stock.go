package inventory

import (
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/requests"
	"carehome-service/internal/pkg/dto/responses"
	"carehome-service/internal/pkg/exceptions"
	"errors"
)

// SplitIntoPackages converts a unit count into whole packages and loose units.
// A non-positive package size keeps everything loose.
func SplitIntoPackages(total, unitsPerPackage int) responses.Packaging {
	if unitsPerPackage <= 0 {
		return responses.Packaging{PackageCount: 0, RemainderUnits: total}
	}
	return responses.Packaging{
		PackageCount:   total / unitsPerPackage,
		RemainderUnits: total % unitsPerPackage,
	}
}

// StockUpdate is either SetQuantity or AddQuantity. Each variant produces its own
// payload so the two sets of fields can never travel together.
type StockUpdate interface {
	Payload() care_dto.StockPayload
}

// SetQuantity replaces the loose home quantity.
type SetQuantity struct {
	Quantity int
}

// AddQuantity adds whole packages and loose units to the stored stock.
type AddQuantity struct {
	Packages int
	Units    int
}

func (s SetQuantity) Payload() care_dto.StockPayload {
	return care_dto.SetQuantityPayload{Quantity: s.Quantity}
}

func (a AddQuantity) Payload() care_dto.StockPayload {
	return care_dto.AddQuantityPayload{AddPackages: a.Packages, AddQuantity: a.Units}
}

// NewStockUpdate turns a validated request into its variant. Mode "add" splits
// Total with the request's package size.
func NewStockUpdate(request *requests.UpdateStock) (StockUpdate, error) {
	switch request.Mode {
	case constvars.StockModeSet:
		if request.Quantity == nil || request.Total != nil {
			return nil, exceptions.ErrInputValidation(errors.New("mode set takes quantity only"))
		}
		return SetQuantity{Quantity: *request.Quantity}, nil
	case constvars.StockModeAdd:
		if request.Total == nil || request.Quantity != nil {
			return nil, exceptions.ErrInputValidation(errors.New("mode add takes total and unitsPerPackage only"))
		}
		packaging := SplitIntoPackages(*request.Total, request.UnitsPerPackage)
		return AddQuantity{Packages: packaging.PackageCount, Units: packaging.RemainderUnits}, nil
	default:
		return nil, exceptions.ErrInputValidation(errors.New("mode must be set or add"))
	}
}
