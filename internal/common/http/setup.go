package http

import (
	"net/http"

	"github.com/m-orlov/taskboard/internal/common/constants"
	"github.com/m-orlov/taskboard/internal/common/httpmetrics"
	"github.com/m-orlov/taskboard/internal/common/logger"
)

func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)
	csp := ContentSecurityPolicyMiddleware("")

	return SecurityHeadersMiddleware(csp(recovery(TraceIDMiddleware(maxRequestSize(httpmetrics.Wrap(handler))))))
}
