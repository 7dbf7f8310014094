package handlers

import (
	"errors"
	"net/http"

	"github.com/g-vinokurov/interstellarium/services"
)

type ErrorCode struct {
	Msg        string
	HTTPStatus int
	ServiceErr error
}

// ErrorResponse is the uniform error body: a short machine-readable reason.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

var (
	ErrCodeBadRequest = ErrorCode{
		Msg:        "Bad request",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrCodeUnauthorized = ErrorCode{
		Msg:        "Could not validate credentials",
		HTTPStatus: http.StatusUnauthorized,
	}
	ErrCodeAccessDenied = ErrorCode{
		Msg:        "Access denied",
		HTTPStatus: http.StatusForbidden,
		ServiceErr: services.ErrAccessDenied,
	}
	ErrCodeTokenInvalid = ErrorCode{
		Msg:        "Could not validate credentials",
		HTTPStatus: http.StatusUnauthorized,
		ServiceErr: services.ErrTokenInvalid,
	}
	ErrCodeInvalidPassword = ErrorCode{
		Msg:        "Invalid password",
		HTTPStatus: http.StatusBadRequest,
		ServiceErr: services.ErrInvalidPassword,
	}
	ErrCodeInvalidDateRange = ErrorCode{
		Msg:        "Start date cannot be greater than finish date",
		HTTPStatus: http.StatusBadRequest,
		ServiceErr: services.ErrInvalidDateRange,
	}

	ErrCodeUserNotFound = ErrorCode{
		Msg:        "User not found",
		HTTPStatus: http.StatusNotFound,
		ServiceErr: services.ErrUserNotFound,
	}
	ErrCodeUserExists = ErrorCode{
		Msg:        "User exists",
		HTTPStatus: http.StatusBadRequest,
		ServiceErr: services.ErrUserExists,
	}
	ErrCodeDepartmentNotFound = ErrorCode{
		Msg:        "Department not found",
		HTTPStatus: http.StatusNotFound,
		ServiceErr: services.ErrDepartmentNotFound,
	}
	ErrCodeDepartmentExists = ErrorCode{
		Msg:        "Department exists",
		HTTPStatus: http.StatusBadRequest,
		ServiceErr: services.ErrDepartmentExists,
	}
	ErrCodeGroupNotFound = ErrorCode{
		Msg:        "Group not found",
		HTTPStatus: http.StatusNotFound,
		ServiceErr: services.ErrGroupNotFound,
	}
	ErrCodeGroupExists = ErrorCode{
		Msg:        "Group exists",
		HTTPStatus: http.StatusBadRequest,
		ServiceErr: services.ErrGroupExists,
	}
	ErrCodeContractNotFound = ErrorCode{
		Msg:        "Contract not found",
		HTTPStatus: http.StatusNotFound,
		ServiceErr: services.ErrContractNotFound,
	}
	ErrCodeContractExists = ErrorCode{
		Msg:        "Contract exists",
		HTTPStatus: http.StatusBadRequest,
		ServiceErr: services.ErrContractExists,
	}
	ErrCodeProjectNotFound = ErrorCode{
		Msg:        "Project not found",
		HTTPStatus: http.StatusNotFound,
		ServiceErr: services.ErrProjectNotFound,
	}
	ErrCodeProjectExists = ErrorCode{
		Msg:        "Project exists",
		HTTPStatus: http.StatusBadRequest,
		ServiceErr: services.ErrProjectExists,
	}
	ErrCodeEquipmentNotFound = ErrorCode{
		Msg:        "Equipment not found",
		HTTPStatus: http.StatusNotFound,
		ServiceErr: services.ErrEquipmentNotFound,
	}
	ErrCodeEquipmentExists = ErrorCode{
		Msg:        "Equipment exists",
		HTTPStatus: http.StatusBadRequest,
		ServiceErr: services.ErrEquipmentExists,
	}
	ErrCodeWorkNotFound = ErrorCode{
		Msg:        "Work not found",
		HTTPStatus: http.StatusNotFound,
		ServiceErr: services.ErrWorkNotFound,
	}

	ErrCodeOwnerNotFound = ErrorCode{
		Msg:        "Not found",
		HTTPStatus: http.StatusNotFound,
		ServiceErr: services.ErrOwnerNotFound,
	}
	ErrCodePeerNotFound = ErrorCode{
		Msg:        "Not found",
		HTTPStatus: http.StatusNotFound,
		ServiceErr: services.ErrPeerNotFound,
	}
	ErrCodeAlreadyLinked = ErrorCode{
		Msg:        "Already linked",
		HTTPStatus: http.StatusBadRequest,
		ServiceErr: services.ErrAlreadyLinked,
	}
	ErrCodeLinkNotFound = ErrorCode{
		Msg:        "Link not found",
		HTTPStatus: http.StatusNotFound,
		ServiceErr: services.ErrLinkNotFound,
	}

	ErrCodeInternalError = ErrorCode{
		Msg:        "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
	}
)

var errorCodeRegistry = []ErrorCode{
	ErrCodeAccessDenied,
	ErrCodeTokenInvalid,
	ErrCodeInvalidPassword,
	ErrCodeInvalidDateRange,
	ErrCodeUserNotFound,
	ErrCodeUserExists,
	ErrCodeDepartmentNotFound,
	ErrCodeDepartmentExists,
	ErrCodeGroupNotFound,
	ErrCodeGroupExists,
	ErrCodeContractNotFound,
	ErrCodeContractExists,
	ErrCodeProjectNotFound,
	ErrCodeProjectExists,
	ErrCodeEquipmentNotFound,
	ErrCodeEquipmentExists,
	ErrCodeWorkNotFound,
	ErrCodeOwnerNotFound,
	ErrCodePeerNotFound,
	ErrCodeAlreadyLinked,
	ErrCodeLinkNotFound,
}

func HandleServiceError(w http.ResponseWriter, err error) {
	for _, ec := range errorCodeRegistry {
		if ec.ServiceErr != nil && errors.Is(err, ec.ServiceErr) {
			RespondWithError(w, ec, err)
			return
		}
	}
	RespondWithError(w, ErrCodeInternalError, err)
}

func RespondWithError(w http.ResponseWriter, errCode ErrorCode, err error) {
	RespondWithJSON(w, errCode.HTTPStatus, ErrorResponse{Msg: errCode.Msg})
}
