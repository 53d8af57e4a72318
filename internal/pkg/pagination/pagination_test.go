package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContext(t *testing.T) {
	cases := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", DefaultPage, DefaultLimit},
		{"page=3&limit=25", 3, 25},
		{"page=0&limit=0", DefaultPage, DefaultLimit},
		{"page=-2&limit=-5", DefaultPage, DefaultLimit},
		{"page=abc&limit=xyz", DefaultPage, DefaultLimit},
		{"limit=5000", DefaultPage, MaxLimit},
	}
	for _, tc := range cases {
		q := FromContext(queryContext(tc.query))
		assert.Equal(t, tc.wantPage, q.Page, "query %q", tc.query)
		assert.Equal(t, tc.wantLimit, q.Limit, "query %q", tc.query)
	}
}
