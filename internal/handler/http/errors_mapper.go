package http

import (
	"errors"
	"net/http"

	"github.com/Grihladin/42Connect/internal/intra"
	"github.com/Grihladin/42Connect/internal/service"
	"github.com/Grihladin/42Connect/internal/store"
	"github.com/Grihladin/42Connect/internal/sync"
	"github.com/Grihladin/42Connect/internal/token"
)

var errorStatusMap = map[error]int{
	token.ErrInvalidToken:         http.StatusBadRequest,
	service.ErrMissingOAuthParams: http.StatusBadRequest,
	service.ErrStateMismatch:      http.StatusBadRequest,
	service.ErrNotAuthenticated:   http.StatusUnauthorized,
	intra.ErrExchangeFailed:       http.StatusBadRequest,
	intra.ErrUpstreamUnavailable:  http.StatusBadGateway,
	sync.ErrMissingIdentity:       http.StatusInternalServerError,

	store.ErrStudentNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
