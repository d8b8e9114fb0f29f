package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oceansouq/platform-core/internal/domain"
)

// locale selects the language of error details. Selection happens at this
// edge only; the core produces typed errors, not strings.
type locale string

const (
	localeEN locale = "en"
	localeAR locale = "ar"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeDetail(w http.ResponseWriter, statusCode int, detail string) {
	writeJSON(w, statusCode, errorBody{Detail: detail})
}

type message struct {
	EN string
	AR string
}

func (m message) in(loc locale) string {
	if loc == localeAR {
		return m.AR
	}
	return m.EN
}

var (
	msgBadCredential = message{EN: "Invalid or expired credential", AR: "بيانات اعتماد غير صالحة أو منتهية الصلاحية"}
	msgSuspended     = message{EN: "Account suspended", AR: "الحساب موقوف"}
	msgEmailTaken    = message{EN: "Email already registered", AR: "البريد الإلكتروني مسجل مسبقاً"}
	msgNotFound      = message{EN: "Resource not found", AR: "المورد غير موجود"}
	msgUnavailable   = message{EN: "Service temporarily unavailable", AR: "الخدمة غير متاحة مؤقتاً"}
	msgTooMany       = message{EN: "Too many requests", AR: "عدد كبير جداً من الطلبات"}
	msgInternal      = message{EN: "Internal server error", AR: "خطأ داخلي في الخادم"}
)

// mapDomainError translates the internal failure taxonomy to the HTTP
// surface. 401 responses never disclose whether the subject exists; 403
// names the missing capability and nothing more.
func mapDomainError(err error, loc locale) (int, string) {
	var capErr *domain.CapabilityError
	if errors.As(err, &capErr) {
		if loc == localeAR {
			return http.StatusForbidden, "مطلوب صلاحية " + string(capErr.Capability)
		}
		return http.StatusForbidden, string(capErr.Capability) + " required"
	}
	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		if loc == localeAR {
			return http.StatusBadRequest, fieldErr.Field + " غير صالح"
		}
		return http.StatusBadRequest, fieldErr.Field + " invalid"
	}

	switch {
	case errors.Is(err, domain.ErrMissingCredential),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrBadSignature),
		errors.Is(err, domain.ErrSubjectGone),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgBadCredential.in(loc)
	case errors.Is(err, domain.ErrSubjectSuspended):
		return http.StatusForbidden, msgSuspended.in(loc)
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, msgEmailTaken.in(loc)
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, msgNotFound.in(loc)
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, msgUnavailable.in(loc)
	default:
		return http.StatusInternalServerError, msgInternal.in(loc)
	}
}

func writeMappedError(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	status, detail := mapDomainError(err, localeFromContext(ctx))
	logHTTPOperationError(ctx, operation, status, detail, err)
	writeDetail(w, status, detail)
}
