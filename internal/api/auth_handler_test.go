package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"wastesync-backend-go/internal/core"
)

func statusForAuthError(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	mapAuthErrorToStatus(c, err)
	return recorder.Code
}

func TestMapAuthErrorToStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{
			// The chain a duplicate sign-up actually produces: the
			// repository translates the Admin SDK error into the db
			// sentinel and the service maps it onto the conflict sentinel.
			name: "duplicate email from admin sdk",
			err:  fmt.Errorf("%w: 'a@b.c'", core.ErrEmailAlreadyInUse),
			want: http.StatusConflict,
		},
		{
			name: "duplicate email from identity toolkit",
			err:  errors.New("identity toolkit: EMAIL_EXISTS"),
			want: http.StatusConflict,
		},
		{
			name: "profile missing",
			err:  fmt.Errorf("get profile: %w", core.ErrUserNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "half-created account",
			err:  fmt.Errorf("%w (uid u-1): firestore unavailable", core.ErrProfileWriteAfterSignUp),
			want: http.StatusBadGateway,
		},
		{
			name: "bad credentials",
			err:  errors.New("sign in: identity toolkit: INVALID_LOGIN_CREDENTIALS"),
			want: http.StatusUnauthorized,
		},
		{
			name: "unknown error",
			err:  errors.New("something broke"),
			want: http.StatusInternalServerError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusForAuthError(t, tc.err); got != tc.want {
				t.Fatalf("status = %d, want %d", got, tc.want)
			}
		})
	}
}
