package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func paramsForQuery(t *testing.T, query string) PaginationParams {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit", "page=3&limit=25", 3, 25, 50},
		{"page below minimum", "page=0", 1, 10, 0},
		{"negative page", "page=-2", 1, 10, 0},
		{"limit below minimum", "limit=0", 1, 10, 0},
		{"limit above maximum", "limit=500", 1, 10, 0},
		{"garbage input", "page=abc&limit=xyz", 1, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := paramsForQuery(t, tc.query)
			require.Equal(t, tc.wantPage, params.Page)
			require.Equal(t, tc.wantLimit, params.Limit)
			require.Equal(t, tc.wantOffset, params.Offset)
		})
	}
}
