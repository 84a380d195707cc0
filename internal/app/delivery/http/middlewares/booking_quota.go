package middlewares

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// Quota limits each client IP to maxQuota requests per window across all
// instances, using the shared Redis limiter. Limiter failures let the
// request through.
func (m *Middlewares) Quota(group string, windowSec, maxQuota int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.ResourceLimiter == nil || maxQuota <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			out, err := m.ResourceLimiter.ApplyResourceLimiter(r.Context(), &contracts.ApplyResourceLimiterInput{
				ResourceName:      clientIP(r),
				LimiterGroupName:  group,
				WindowDurationSec: windowSec,
				MaxQuota:          maxQuota,
			})
			if err != nil {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Warn("Middlewares.Quota limiter unavailable",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			if !out.Allowed {
				w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(out.RetryAfterSecs))
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(fmt.Errorf("%s quota exceeded", group)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
