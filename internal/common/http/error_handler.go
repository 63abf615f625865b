package http

import (
	"net/http"
	"strconv"

	commonerrors "github.com/m-orlov/taskboard/internal/common/errors"
	"github.com/m-orlov/taskboard/internal/common/httpmetrics"
	"github.com/m-orlov/taskboard/internal/common/logger"
	"github.com/m-orlov/taskboard/internal/observability/metrics"
)

func HandleError(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	if err == nil {
		return
	}

	ctx := r.Context()
	traceID := TraceIDFromContext(ctx)

	if domainErr, ok := commonerrors.AsDomainError(err); ok {
		status := domainErr.HTTPStatus()

		logFields := logger.Fields{
			"error_code": domainErr.Code(),
			"category":   string(domainErr.Category()),
			"status":     status,
			"action":     "domain_error",
		}
		if log.ShouldLog(logger.DEBUG) {
			log.WithFields(ctx, logFields).Debugf("domain error: %s", domainErr.Error())
		}

		metrics.DomainErrorsTotal.WithLabelValues(
			string(domainErr.Category()),
			domainErr.Code(),
			strconv.Itoa(status),
		).Inc()
		metrics.HTTPErrorsTotal.WithLabelValues(
			strconv.Itoa(status),
			httpmetrics.NormalizePath(r.URL.Path),
			r.Method,
		).Inc()

		WriteErrorEnvelope(w, status, domainErr.Code(), domainErr.Message(), traceID)
		return
	}

	log.WithFields(ctx, logger.Fields{
		"error":  err.Error(),
		"action": "unhandled_error",
	}).Errorf("unhandled error: %v", err)

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(http.StatusInternalServerError),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteError(w, http.StatusInternalServerError, "internal server error")
}
