package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

const msgForbidden = "недостаточно прав для этой операции"

// Operation именованная операция API, к которой привязываются права ролей
type Operation string

const (
	OpCompanyGet Operation = "company.get"

	OpProfileGet    Operation = "profile.get"
	OpProfileUpdate Operation = "profile.update"

	OpBuildingCreate Operation = "building.create"
	OpBuildingList   Operation = "building.list"
	OpBuildingGet    Operation = "building.get"

	OpCoworkingCreate Operation = "coworking.create"
	OpCoworkingList   Operation = "coworking.list"
	OpCoworkingGet    Operation = "coworking.get"
	OpCoworkingUpdate Operation = "coworking.update"
	OpCoworkingResize Operation = "coworking.resize"
	OpCoworkingDelete Operation = "coworking.delete"

	OpItemTypeCreate Operation = "item_type.create"
	OpItemTypeList   Operation = "item_type.list"
	OpItemTypeGet    Operation = "item_type.get"
	OpItemTypeIcon   Operation = "item_type.icon"
	OpItemTypeDelete Operation = "item_type.delete"

	OpItemPlace  Operation = "item.place"
	OpItemsPut   Operation = "item.put_all"
	OpItemList   Operation = "item.list"
	OpItemDelete Operation = "item.delete"

	OpBookingCreate  Operation = "booking.create"
	OpBookingGet     Operation = "booking.get"
	OpBookingListMy  Operation = "booking.list_my"
	OpBookingListAll Operation = "booking.list_coworking"
	OpBookingUpdate  Operation = "booking.update"
	OpBookingDelete  Operation = "booking.delete"

	OpQrGenerate Operation = "qr.generate"
	OpQrVerify   Operation = "qr.verify"

	OpVerificationRequest  Operation = "verification.request"
	OpVerificationList     Operation = "verification.list"
	OpVerificationDocument Operation = "verification.document"
	OpVerificationApprove  Operation = "verification.approve"
	OpVerificationDecline  Operation = "verification.decline"
)

// viewerRoles роли, которым доступны операции просмотра
var viewerRoles = map[domain.Role]bool{
	domain.RoleAdmin:         true,
	domain.RoleStudent:       true,
	domain.RoleGuest:         true,
	domain.RoleVerifiedGuest: true,
}

// bookerRoles роли с правом управлять собственными бронированиями
var bookerRoles = map[domain.Role]bool{
	domain.RoleAdmin:         true,
	domain.RoleStudent:       true,
	domain.RoleVerifiedGuest: true,
}

// adminOnly операции управления компанией
var adminOnly = map[domain.Role]bool{
	domain.RoleAdmin: true,
}

// permissions таблица прав: операция -> роли, которым она разрешена
// Отсутствующая в таблице операция запрещена всем, это защита по умолчанию
var permissions = map[Operation]map[domain.Role]bool{
	OpCompanyGet: viewerRoles,

	OpProfileGet:    viewerRoles,
	OpProfileUpdate: viewerRoles,

	OpBuildingCreate: adminOnly,
	OpBuildingList:   viewerRoles,
	OpBuildingGet:    viewerRoles,

	OpCoworkingCreate: adminOnly,
	OpCoworkingList:   viewerRoles,
	OpCoworkingGet:    viewerRoles,
	OpCoworkingUpdate: adminOnly,
	OpCoworkingResize: adminOnly,
	OpCoworkingDelete: adminOnly,

	OpItemTypeCreate: adminOnly,
	OpItemTypeList:   viewerRoles,
	OpItemTypeGet:    viewerRoles,
	OpItemTypeIcon:   viewerRoles,
	OpItemTypeDelete: adminOnly,

	OpItemPlace:  adminOnly,
	OpItemsPut:   adminOnly,
	OpItemList:   viewerRoles,
	OpItemDelete: adminOnly,

	// Создание и изменение бронирований дополнительно проверяется
	// в usecase через Role.CanBook
	OpBookingCreate:  bookerRoles,
	OpBookingGet:     bookerRoles,
	OpBookingListMy:  bookerRoles,
	OpBookingListAll: adminOnly,
	OpBookingUpdate:  bookerRoles,
	OpBookingDelete:  bookerRoles,

	OpQrGenerate: bookerRoles,
	// Проверка QR доступна только администратору: это операция
	// поста охраны, а не владельца бронирования
	OpQrVerify: adminOnly,

	// Запрос на верификацию имеет смысл только для гостя
	OpVerificationRequest: {domain.RoleGuest: true},

	OpVerificationList:     adminOnly,
	OpVerificationDocument: adminOnly,
	OpVerificationApprove:  adminOnly,
	OpVerificationDecline:  adminOnly,
}

// Allowed сообщает, разрешена ли операция роли
func Allowed(op Operation, role domain.Role) bool {
	roles, ok := permissions[op]
	if !ok {
		return false
	}
	return roles[role]
}

// Authorize проверяет право роли из claims на операцию
// Ставится после Auth: отсутствие claims в контексте означает
// ошибку конфигурации роутера
func Authorize(op Operation, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.Error("Authorize: no claims in context, op=%s, path=%s", op, r.URL.Path)
				handlers.RespondInternalError(w)
				return
			}

			if !Allowed(op, claims.Role) {
				log.Warn("Authorize: role %s denied for op=%s, user=%s", claims.Role, op, claims.UserID)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
