package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeRequestsCounter(t *testing.T) {
	before := testutil.ToFloat64(RecipeRequests.WithLabelValues("success"))
	RecipeRequests.WithLabelValues("success").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(RecipeRequests.WithLabelValues("success")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	ObserveGeneration("ok", time.Now())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "pantry_chef_generation_duration_seconds")
}
