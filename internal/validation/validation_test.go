package validation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type stockPayload struct {
	NewQuantity *int `json:"novaQuantidade" binding:"required"`
}

func runBind(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst stockPayload
	return w, BindAndValidateJSON(c, &dst)
}

func TestBindAndValidateJSON_OK(t *testing.T) {
	w, ok := runBind(t, `{"novaQuantidade": 0}`)
	if !ok {
		t.Fatalf("expected bind to succeed, body=%s", w.Body.String())
	}
}

func TestBindAndValidateJSON_MissingField(t *testing.T) {
	w, ok := runBind(t, `{}`)
	if ok {
		t.Fatalf("expected bind to fail")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != "VALIDATION_FAILED" {
		t.Errorf("expected code VALIDATION_FAILED, got %q", resp.Code)
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(resp.Errors))
	}
	if resp.Errors[0].Field != "novaQuantidade" || resp.Errors[0].Rule != "required" {
		t.Errorf("unexpected field error: %+v", resp.Errors[0])
	}
	if resp.Errors[0].Message != "novaQuantidade is required" {
		t.Errorf("unexpected message %q", resp.Errors[0].Message)
	}
}

func TestBindAndValidateJSON_Syntax(t *testing.T) {
	w, ok := runBind(t, `{"novaQuantidade": `)
	if ok {
		t.Fatalf("expected bind to fail")
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Code != "INVALID_REQUEST_BODY" {
		t.Errorf("expected code INVALID_REQUEST_BODY, got %q", resp.Code)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Rule != "syntax" {
		t.Errorf("unexpected errors: %+v", resp.Errors)
	}
}
