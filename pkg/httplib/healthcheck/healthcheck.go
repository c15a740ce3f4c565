package healthcheck

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"
)

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

// HealthCheck answers GET /health. With no checks registered it always answers ok.
type HealthCheck struct {
	Checks  map[string]Checker
	Timeout time.Duration
}

// Handler is used to control the flow of GET /health endpoint
func (hc HealthCheck) Handler(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if IsHealthCheckRequest(r) {
			hc.ServeHTTP(w, r)

			return
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// ServeHTTP runs every check and answers 503 listing the failing ones.
func (hc HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if hc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, hc.Timeout)
		defer cancel()
	}

	names := make([]string, 0, len(hc.Checks))
	for name := range hc.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	var failed []string
	for _, name := range names {
		if err := hc.Checks[name](ctx); err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(failed) > 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
		for _, f := range failed {
			fmt.Fprintln(w, f)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// IsHealthCheckRequest is used to check if the request is a health check request
func IsHealthCheckRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == "/health"
}
