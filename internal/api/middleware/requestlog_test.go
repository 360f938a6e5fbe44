package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/aqarcrm/aqarcrm/internal/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuditMiddlewareCapturesForwardedIPAndUserAgent(t *testing.T) {
	router := gin.New()
	router.Use(AuditMiddleware())

	var gotIP, gotUA string
	router.GET("/ping", func(c *gin.Context) {
		gotIP = GetIPAddress(c)
		gotUA = GetUserAgent(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "aqarcrm-mobile/2.1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	if gotIP != "203.0.113.7" {
		t.Fatalf("got ip %q, want first forwarded address", gotIP)
	}
	if gotUA != "aqarcrm-mobile/2.1" {
		t.Fatalf("got user agent %q", gotUA)
	}
}

func TestRequestLoggerIncludesUserAgentField(t *testing.T) {
	hook := logtest.NewLocal(logging.Logger)
	defer hook.Reset()

	router := gin.New()
	router.Use(AuditMiddleware(), RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("User-Agent", "aqarcrm-mobile/2.1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("no log entry recorded")
	}
	if entry.Data["user_agent"] != "aqarcrm-mobile/2.1" {
		t.Fatalf("got user_agent field %v", entry.Data["user_agent"])
	}
	if entry.Data["method"] != http.MethodGet || entry.Data["path"] != "/ping" {
		t.Fatalf("unexpected request fields: %v", entry.Data)
	}
}
