package place_item

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID == uuid.Nil {
		return fmt.Errorf("%w: companyID is required", ErrInvalidInput)
	}
	if req.BuildingID == uuid.Nil {
		return fmt.Errorf("%w: buildingID is required", ErrInvalidInput)
	}
	if req.CoworkingID == uuid.Nil {
		return fmt.Errorf("%w: coworkingID is required", ErrInvalidInput)
	}
	if req.ItemTypeID == uuid.Nil {
		return fmt.Errorf("%w: itemTypeID is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	return nil
}
