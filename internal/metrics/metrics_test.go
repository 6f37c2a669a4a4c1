package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(http.MethodPost, "/signup", "200"))

	RecordAPIRequest(http.MethodPost, "/signup", http.StatusOK, 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(http.MethodPost, "/signup", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestRecordCatalogRequest(t *testing.T) {
	okBefore := testutil.ToFloat64(CatalogRequestsTotal.WithLabelValues(ResultOK))
	errBefore := testutil.ToFloat64(CatalogRequestsTotal.WithLabelValues(ResultError))

	RecordCatalogRequest(nil, time.Millisecond)
	RecordCatalogRequest(errors.New("timeout"), time.Millisecond)

	if d := testutil.ToFloat64(CatalogRequestsTotal.WithLabelValues(ResultOK)) - okBefore; d != 1 {
		t.Errorf("ok delta = %v", d)
	}
	if d := testutil.ToFloat64(CatalogRequestsTotal.WithLabelValues(ResultError)) - errBefore; d != 1 {
		t.Errorf("error delta = %v", d)
	}
}

func TestRecordGeneration(t *testing.T) {
	const model = "metrics-test-model"

	RecordGeneration(model, nil, 0.25)
	RecordGeneration(model, errors.New("quota"), 0)

	if got := testutil.ToFloat64(GenerationCostUSD.WithLabelValues(model)); got != 0.25 {
		t.Errorf("cost = %v, want 0.25", got)
	}
	if got := testutil.ToFloat64(GenerationRequestsTotal.WithLabelValues(model, ResultError)); got != 1 {
		t.Errorf("error count = %v, want 1", got)
	}
}
