package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pkgvalidator "github.com/ghuser/marketscout/pkg/validator"
)

type sampleStruct struct {
	ExternalItemID string  `validate:"required,max=10"`
	PlatformID     int64   `validate:"required,gt=0"`
	SellerURL      *string `validate:"omitempty,http_url"`
}

func strptr(s string) *string { return &s }

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		ExternalItemID: "EBAY-1",
		PlatformID:     1,
		SellerURL:      strptr("https://seller.test/shop"),
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ExternalItemID"] != "This field is required" {
		t.Errorf("unexpected ExternalItemID message: %q", m["ExternalItemID"])
	}
	if m["PlatformID"] != "This field is required" {
		t.Errorf("unexpected PlatformID message: %q", m["PlatformID"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{ExternalItemID: "12345678901", PlatformID: 1} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ExternalItemID"] != "Maximum length is 10" {
		t.Errorf("unexpected ExternalItemID message: %q", m["ExternalItemID"])
	}
}

func TestFormatValidationErrors_httpURL(t *testing.T) {
	s := sampleStruct{ExternalItemID: "EBAY-1", PlatformID: 1, SellerURL: strptr("not a url")}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["SellerURL"] != "Must be an absolute http or https URL" {
		t.Errorf("unexpected SellerURL message: %q", m["SellerURL"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- Violations ---

type multiFieldStruct struct {
	First  string `json:"first"  validate:"required"`
	Second string `json:"second" validate:"required"`
	Third  string `json:"third"  validate:"required"`
}

func TestViolations_preservesDeclarationOrder(t *testing.T) {
	err := pkgvalidator.Validate(&multiFieldStruct{})
	violations := pkgvalidator.Violations(err)

	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %d", len(violations))
	}
	want := []string{"first", "second", "third"}
	for i, v := range violations {
		if v.Field != want[i] {
			t.Errorf("violation %d: expected field %q, got %q", i, want[i], v.Field)
		}
	}
}

func TestViolations_nonValidationError(t *testing.T) {
	if got := pkgvalidator.Violations(http.ErrNoCookie); got != nil {
		t.Errorf("expected nil for non-validation error, got %v", got)
	}
}

// --- not_far_future ---

type detectedStruct struct {
	DetectedDate time.Time `json:"detected_date" validate:"not_far_future"`
}

func TestNotFarFuture(t *testing.T) {
	tests := []struct {
		name    string
		when    time.Time
		wantErr bool
	}{
		{"past timestamp passes", time.Now().Add(-time.Hour), false},
		{"slight clock skew passes", time.Now().Add(30 * time.Minute), false},
		{"far future fails", time.Now().Add(2 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pkgvalidator.Validate(&detectedStruct{DetectedDate: tt.when})
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// --- ValidateRequest ---

type itemReq struct {
	ExternalItemID string `json:"external_item_id" validate:"required,max=255"`
	Title          string `json:"title"            validate:"required,max=500"`
	PlatformID     int64  `json:"platform_id"      validate:"required,gt=0"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"external_item_id":"EBAY-1","title":"Wireless Earbuds","platform_id":1}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Title != "Wireless Earbuds" {
		t.Errorf("unexpected Title: %q", req.Title)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"title":"Wireless Earbuds","platform_id":1}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing external_item_id")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "external_item_id") {
		t.Errorf("expected json field name in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_reportsAllViolations(t *testing.T) {
	body := `{}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for empty body")
	}
	for _, field := range []string{"external_item_id", "title", "platform_id"} {
		if !strings.Contains(w.Body.String(), field) {
			t.Errorf("expected field %q reported, got: %s", field, w.Body.String())
		}
	}
}
