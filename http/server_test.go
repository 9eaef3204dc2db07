package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	evaluator "github.com/Norikachi123/Container-Evaluator"
	evalhttp "github.com/Norikachi123/Container-Evaluator/http"
	"github.com/Norikachi123/Container-Evaluator/mock"
	"github.com/Norikachi123/Container-Evaluator/review"
)

const (
	reviewerToken = "reviewer-token"
	viewerToken   = "viewer-token"
)

// fakeExporter satisfies evalhttp.DocumentExporter without rendering.
type fakeExporter struct {
	invoiceURL string
	reportURL  string
	err        error
}

func (e *fakeExporter) ExportInvoice(ctx context.Context, insp *evaluator.Inspection) (string, error) {
	return e.invoiceURL, e.err
}

func (e *fakeExporter) ExportReport(ctx context.Context, insp *evaluator.Inspection) (string, error) {
	return e.reportURL, e.err
}

// fixture returns an inspection with one image and a reviewed ledger.
func fixture() *evaluator.Inspection {
	imageID := uuid.New()
	return &evaluator.Inspection{
		ID:              uuid.New(),
		ContainerNumber: "MSCU1234567",
		InspectorName:   "J. Okafor",
		Status:          evaluator.InspectionStatusInReview,
		Images: []*evaluator.ContainerImage{
			{ID: imageID, Side: evaluator.SideLeft, StorageKey: "img/left.jpg"},
		},
		Defects: []*evaluator.Defect{
			{ID: uuid.New(), ImageID: imageID, Code: "DENT", Severity: evaluator.SeverityMedium, Status: evaluator.DefectStatusAccepted, RepairCost: 10000},
			{ID: uuid.New(), ImageID: imageID, Code: "RUST", Severity: evaluator.SeverityLow, Status: evaluator.DefectStatusPending, RepairCost: 2500},
		},
	}
}

// newServer wires a server over an in-memory aggregate.
func newServer(t *testing.T, insp *evaluator.Inspection, exporter *fakeExporter) *evalhttp.Server {
	t.Helper()

	inspections := &mock.InspectionService{
		FindInspectionByIDFn: func(ctx context.Context, id uuid.UUID) (*evaluator.Inspection, error) {
			if insp == nil || insp.ID != id {
				return nil, evaluator.NotFound("Inspection not found")
			}
			return insp, nil
		},
		FindNextPendingFn: func(ctx context.Context) (*evaluator.PendingItem, error) {
			if insp == nil {
				return nil, evaluator.NotFound("No inspections pending review")
			}
			return &evaluator.PendingItem{InspectionID: insp.ID, ContainerNumber: insp.ContainerNumber}, nil
		},
	}

	svc := review.NewService(review.Config{
		InspectionService: inspections,
		SequenceService:   &mock.SequenceService{},
	})

	if exporter == nil {
		exporter = &fakeExporter{}
	}

	return evalhttp.NewServer(evalhttp.Config{
		Addr: ":0",
		APITokens: map[string]*evaluator.User{
			reviewerToken: {ID: uuid.New(), Name: "R. Vega", Role: evaluator.RoleReviewer},
			viewerToken:   {ID: uuid.New(), Name: "V. Chen", Role: evaluator.RoleViewer},
		},
		ReviewService:     svc,
		InspectionService: inspections,
		Exporter:          exporter,
	})
}

// do runs one request through the full middleware chain.
func do(s *evalhttp.Server, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func TestAuthentication(t *testing.T) {
	insp := fixture()
	s := newServer(t, insp, nil)

	t.Run("missing token", func(t *testing.T) {
		rec := do(s, http.MethodGet, "/api/inspections/"+insp.ID.String(), "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		rec := do(s, http.MethodGet, "/api/inspections/"+insp.ID.String(), "bogus", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("health is public", func(t *testing.T) {
		rec := do(s, http.MethodGet, "/health", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGetInspection(t *testing.T) {
	insp := fixture()
	s := newServer(t, insp, nil)

	rec := do(s, http.MethodGet, "/api/inspections/"+insp.ID.String(), viewerToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got evaluator.Inspection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "MSCU1234567", got.ContainerNumber)
	require.Len(t, got.Defects, 2)

	t.Run("unknown id", func(t *testing.T) {
		rec := do(s, http.MethodGet, "/api/inspections/"+uuid.NewString(), viewerToken, "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := do(s, http.MethodGet, "/api/inspections/not-a-uuid", viewerToken, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNextPending(t *testing.T) {
	insp := fixture()
	s := newServer(t, insp, nil)

	rec := do(s, http.MethodGet, "/api/inspections/next", viewerToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var item evaluator.PendingItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	require.Equal(t, insp.ID, item.InspectionID)
	require.Equal(t, "MSCU1234567", item.ContainerNumber)
}

func TestSetDefectStatus(t *testing.T) {
	insp := fixture()
	s := newServer(t, insp, nil)
	path := fmt.Sprintf("/api/inspections/%s/defects/%s/status", insp.ID, insp.Defects[1].ID)

	t.Run("accepting a defect derives the quote", func(t *testing.T) {
		rec := do(s, http.MethodPut, path, reviewerToken, `{"status":"accepted"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var got evaluator.Inspection
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, evaluator.Money(12500), got.Quote.Subtotal)
		require.Equal(t, evaluator.Money(13750), got.Quote.Total)
	})

	t.Run("viewer is forbidden", func(t *testing.T) {
		rec := do(s, http.MethodPut, path, viewerToken, `{"status":"rejected"}`)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("invalid status value", func(t *testing.T) {
		rec := do(s, http.MethodPut, path, reviewerToken, `{"status":"maybe"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSetDefectCost(t *testing.T) {
	insp := fixture()
	s := newServer(t, insp, nil)
	path := fmt.Sprintf("/api/inspections/%s/defects/%s/cost", insp.ID, insp.Defects[0].ID)

	rec := do(s, http.MethodPut, path, reviewerToken, `{"costCents":20000}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got evaluator.Inspection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, evaluator.Money(20000), got.Defects[0].RepairCost)

	t.Run("negative cost", func(t *testing.T) {
		rec := do(s, http.MethodPut, path, reviewerToken, `{"costCents":-1}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestQuoteLifecycle(t *testing.T) {
	insp := fixture()
	s := newServer(t, insp, nil)
	base := "/api/inspections/" + insp.ID.String()

	t.Run("invoice before approval", func(t *testing.T) {
		// Put a draft quote in place first.
		rec := do(s, http.MethodPut, fmt.Sprintf("%s/defects/%s/status", base, insp.Defects[1].ID), reviewerToken, `{"status":"rejected"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(s, http.MethodPost, base+"/invoice", reviewerToken, `{"customerName":"Maersk Line","customerAddress":"50 Esplanaden, Copenhagen"}`)
		require.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})

	t.Run("approve then invoice", func(t *testing.T) {
		rec := do(s, http.MethodPost, base+"/quote/approve", reviewerToken, "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(s, http.MethodPost, base+"/invoice", reviewerToken, `{"customerName":"Maersk Line","customerAddress":"50 Esplanaden, Copenhagen"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var got evaluator.Inspection
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, evaluator.QuoteStatusInvoiced, got.Quote.Status)
		require.NotNil(t, got.Quote.Invoice)
		require.Equal(t, evaluator.InspectionStatusCompleted, got.Status)
	})

	t.Run("mutation after invoicing", func(t *testing.T) {
		rec := do(s, http.MethodPut, fmt.Sprintf("%s/defects/%s/status", base, insp.Defects[0].ID), reviewerToken, `{"status":"rejected"}`)
		require.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})
}

func TestExportDocuments(t *testing.T) {
	insp := fixture()
	exporter := &fakeExporter{
		invoiceURL: "https://files.example.com/INV-2026-0001.pdf",
		reportURL:  "https://files.example.com/report_MSCU1234567.pdf",
	}
	s := newServer(t, insp, exporter)
	base := "/api/inspections/" + insp.ID.String()

	t.Run("invoice document", func(t *testing.T) {
		rec := do(s, http.MethodPost, base+"/documents/invoice", reviewerToken, "")
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp evalhttp.DocumentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, exporter.invoiceURL, resp.URL)
	})

	t.Run("report document", func(t *testing.T) {
		rec := do(s, http.MethodPost, base+"/documents/report", reviewerToken, "")
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp evalhttp.DocumentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, exporter.reportURL, resp.URL)
	})

	t.Run("missing invoice precondition", func(t *testing.T) {
		exporter.err = evaluator.PreconditionFailed("No invoice has been issued for this inspection")
		defer func() { exporter.err = nil }()

		rec := do(s, http.MethodPost, base+"/documents/invoice", reviewerToken, "")
		require.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})
}
