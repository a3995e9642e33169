package handler

import (
	"net/http/httptest"
	"testing"

	"Hive_Social/internal/middleware"

	"github.com/gin-gonic/gin"
)

// TestUserIDFromCtx handler读到的必须是中间件写入的同一个键
func TestUserIDFromCtx(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if got := userIDFromCtx(c); got != 0 {
		t.Fatalf("empty context = %d, want 0", got)
	}

	c.Set(middleware.ContextUserIDKey, uint64(42))
	if got := userIDFromCtx(c); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}
