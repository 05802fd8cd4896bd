package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)

	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedOffset int
		expectedLimit  int
		expectError    bool
	}{
		{"defaults", "", 0, 50, false},
		{"explicit values", "offset=10&limit=25", 10, 25, false},
		{"max limit", "limit=100", 0, 100, false},
		{"limit too large", "limit=101", 0, 0, true},
		{"limit zero", "limit=0", 0, 0, true},
		{"negative offset", "offset=-1", 0, 0, true},
		{"non numeric offset", "offset=abc", 0, 0, true},
		{"non numeric limit", "limit=abc", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := paginationContext(t, tt.query)

			offset, limit, err := ParsePagination(c)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}
