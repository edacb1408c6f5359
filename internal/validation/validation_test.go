package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  merchant@upi  ", "merchant@upi"},
		{"strips null bytes", "shop\x00@upi", "shop@upi"},
		{"long input kept whole", strings.Repeat("a", 50000), strings.Repeat("a", 50000)},
		{"empty stays empty", "", ""},
		{"only whitespace", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeString(tt.input); got != tt.want {
				t.Errorf("SanitizeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRequestSizeMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestSizeMiddleware(16))
	r.POST("/scan", func(c *gin.Context) {
		var body struct {
			QRText string `json:"qr_text"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
			return
		}
		c.Status(http.StatusOK)
	})

	// Small body passes
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/scan", strings.NewReader(`{"qr_text":"x"}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("small body: got %d, want 200", w.Code)
	}

	// Oversized body is rejected during binding
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/scan", strings.NewReader(`{"qr_text":"`+strings.Repeat("a", 100)+`"}`))
	r.ServeHTTP(w, req)
	if w.Code == http.StatusOK {
		t.Errorf("oversized body should not succeed, got %d", w.Code)
	}
}

