package put_items

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Пустой набор допустим: это очистка коворкинга
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

	for i, item := range req.Items {
		if item.ItemTypeID == uuid.Nil {
			return fmt.Errorf("%w: item #%d: itemTypeID is required", ErrInvalidInput, i)
		}
		if item.Name == "" {
			return fmt.Errorf("%w: item #%d: name is required", ErrInvalidInput, i)
		}
		if len(item.Name) > domain.MaxNameLength {
			return fmt.Errorf("%w: item #%d: name is too long", ErrInvalidInput, i)
		}
		if item.Description != nil && len(*item.Description) > domain.MaxDescriptionLength {
			return fmt.Errorf("%w: item #%d: description is too long", ErrInvalidInput, i)
		}
	}

	return nil
}
