package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

func TestAllowedAdminOperations(t *testing.T) {
	adminOps := []Operation{
		OpBuildingCreate, OpCoworkingCreate, OpCoworkingResize, OpCoworkingDelete,
		OpItemTypeCreate, OpItemTypeDelete, OpItemPlace, OpItemsPut, OpItemDelete,
		OpBookingListAll, OpQrVerify,
		OpVerificationList, OpVerificationDocument, OpVerificationApprove, OpVerificationDecline,
	}

	for _, op := range adminOps {
		assert.True(t, Allowed(op, domain.RoleAdmin), "admin must be allowed %s", op)
		assert.False(t, Allowed(op, domain.RoleStudent), "student must be denied %s", op)
		assert.False(t, Allowed(op, domain.RoleGuest), "guest must be denied %s", op)
		assert.False(t, Allowed(op, domain.RoleVerifiedGuest), "verified guest must be denied %s", op)
	}
}

func TestAllowedViewerOperations(t *testing.T) {
	viewerOps := []Operation{
		OpCompanyGet, OpProfileGet, OpProfileUpdate,
		OpBuildingList, OpBuildingGet, OpCoworkingList, OpCoworkingGet,
		OpItemTypeList, OpItemTypeGet, OpItemTypeIcon, OpItemList,
	}

	roles := []domain.Role{domain.RoleAdmin, domain.RoleStudent, domain.RoleGuest, domain.RoleVerifiedGuest}
	for _, op := range viewerOps {
		for _, role := range roles {
			assert.True(t, Allowed(op, role), "%s must be allowed %s", role, op)
		}
	}
}

func TestAllowedBookingOperations(t *testing.T) {
	bookerOps := []Operation{
		OpBookingCreate, OpBookingGet, OpBookingListMy,
		OpBookingUpdate, OpBookingDelete, OpQrGenerate,
	}

	for _, op := range bookerOps {
		assert.True(t, Allowed(op, domain.RoleAdmin))
		assert.True(t, Allowed(op, domain.RoleStudent))
		assert.True(t, Allowed(op, domain.RoleVerifiedGuest))
		assert.False(t, Allowed(op, domain.RoleGuest), "guest must be denied %s", op)
	}
}

// Запрос на верификацию разрешен только гостю: остальным он не нужен
func TestAllowedVerificationRequest(t *testing.T) {
	assert.True(t, Allowed(OpVerificationRequest, domain.RoleGuest))
	assert.False(t, Allowed(OpVerificationRequest, domain.RoleAdmin))
	assert.False(t, Allowed(OpVerificationRequest, domain.RoleStudent))
	assert.False(t, Allowed(OpVerificationRequest, domain.RoleVerifiedGuest))
}

// Неизвестная операция запрещена всем ролям
func TestAllowedUnknownOperation(t *testing.T) {
	assert.False(t, Allowed(Operation("unknown.op"), domain.RoleAdmin))
}
