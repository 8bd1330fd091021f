// handlers_loads_test.go - Tests for load lookup handlers
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/freightline/backend/internal/loads"
	"github.com/freightline/backend/internal/models"
)

func newTestTable(t *testing.T, content string) *loads.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loads.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing table file: %v", err)
	}
	table, err := loads.Load(path)
	if err != nil {
		t.Fatalf("loading table: %v", err)
	}
	return table
}

const testTableContent = "reference_number,origin,destination,equipment_type,rate,commodity\n" +
	"REF1,CityA,CityB,Flatbed,500,Steel\n"

func TestLoadHandler_HandleGetLoad(t *testing.T) {
	tests := []struct {
		name       string
		table      *loads.Table
		refNumber  string
		wantErr    bool
		wantStatus int
		wantDetail string
	}{
		{
			name:       "existing load",
			refNumber:  "REF1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown reference number",
			refNumber:  "REF2",
			wantErr:    true,
			wantStatus: http.StatusNotFound,
			wantDetail: "Load not found: REF2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewLoadHandler(newTestTable(t, testTableContent))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/api/loads/:referenceNumber")
			c.SetParamNames("referenceNumber")
			c.SetParamValues(tt.refNumber)

			err := handler.HandleGetLoad(c)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				apiErr, ok := err.(*APIError)
				if !ok {
					t.Fatalf("expected APIError, got %T", err)
				}
				if apiErr.Status != tt.wantStatus {
					t.Errorf("expected status %d, got %d", tt.wantStatus, apiErr.Status)
				}
				if apiErr.Detail != tt.wantDetail {
					t.Errorf("expected detail %q, got %q", tt.wantDetail, apiErr.Detail)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			var record models.LoadRecord
			if err := json.Unmarshal(rec.Body.Bytes(), &record); err != nil {
				t.Fatalf("failed to unmarshal: %v", err)
			}
			want := models.LoadRecord{
				ReferenceNumber: "REF1",
				Origin:          "CityA",
				Destination:     "CityB",
				EquipmentType:   "Flatbed",
				Rate:            "500",
				Commodity:       "Steel",
			}
			if record != want {
				t.Errorf("expected %+v, got %+v", want, record)
			}
		})
	}
}

func TestLoadHandler_EmptyTableIsUnavailable(t *testing.T) {
	// Header only: the table loaded but is empty, same outcome as a
	// failed startup load.
	handler := NewLoadHandler(newTestTable(t, "reference_number,origin,destination,equipment_type,rate,commodity\n"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/loads/:referenceNumber")
	c.SetParamNames("referenceNumber")
	c.SetParamValues("REF1")

	err := handler.HandleGetLoad(c)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.Status)
	}
	if apiErr.Detail != "No load data available" {
		t.Errorf("unexpected detail: %q", apiErr.Detail)
	}
}

func TestLoadHandler_HandleGetLoadMsgpack(t *testing.T) {
	handler := NewLoadHandler(newTestTable(t, testTableContent))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/loads/:referenceNumber/msgpack")
	c.SetParamNames("referenceNumber")
	c.SetParamValues("REF1")

	if err := handler.HandleGetLoadMsgpack(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/msgpack" {
		t.Errorf("unexpected content type: %s", ct)
	}

	var record models.LoadRecord
	if err := msgpack.Unmarshal(rec.Body.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode msgpack: %v", err)
	}
	if record.ReferenceNumber != "REF1" || record.Commodity != "Steel" {
		t.Errorf("unexpected record: %+v", record)
	}
}
