package logger

import (
	"bytes"
	"errors"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	fn()
	return buf.String()
}

func TestFormatFieldsSortsKeys(t *testing.T) {
	got := formatFields(Fields{"symbol": "Cmaj7", "count": 3, "ratio": 0.5})
	assert.Equal(t, "{count=3, ratio=0.50, symbol=Cmaj7}", got)
	assert.Equal(t, "", formatFields(nil))
}

func TestLevels(t *testing.T) {
	out := captureLog(t, func() {
		Info("parsed", Fields{"symbol": "C7"})
		Warn("rejected", Fields{"symbol": "Cfoo"})
		Debug("cache", nil)
		Error("failed", errors.New("boom"), Fields{"request_id": "abc"})
	})

	assert.Contains(t, out, "[INFO] parsed {symbol=C7}")
	assert.Contains(t, out, "[WARN] rejected {symbol=Cfoo}")
	assert.Contains(t, out, "[DEBUG] cache")
	assert.Contains(t, out, "[ERROR] failed: boom {request_id=abc}")
}

func TestLogAPIRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/chords/parse", nil)
	c.Set("request_id", "req-1")

	out := captureLog(t, func() {
		LogAPIRequest(c, 15*time.Millisecond, 200, nil)
	})

	assert.Contains(t, out, "duration_ms=15")
	assert.Contains(t, out, "path=/api/v1/chords/parse")
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "status_code=200")
}

func TestWithContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/circle", nil)
	c.Set("request_id", "req-2")

	fields := WithContext(c)
	assert.Equal(t, "req-2", fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/v1/circle", fields["path"])
}
