package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"timetrack/internal/user"
	usererrors "timetrack/internal/user/errors"
	userMock "timetrack/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "0b8a4f7e-4c6e-4b1a-9a70-5f2d3c1e8a91"

func userRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", testUserID) })

	h := user.NewHandler(svc)
	r.GET("/user/me", h.Me)
	r.PUT("/user/change-data", h.UpdateProfile)
	r.PUT("/user/change-password", h.ChangePassword)
	return r
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	svc.EXPECT().GetMe(gomock.Any(), testUserID).Return(user.UserResponse{
		ID:        testUserID,
		FirstName: "Ivan",
		LastName:  "Ivanov",
		Email:     "worker@example.com",
		Role:      3,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	userRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"worker@example.com"`)
}

func TestHandler_ChangePassword_ClearsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	svc.EXPECT().
		ChangePassword(gomock.Any(), testUserID, user.ChangePasswordRequest{
			OldPassword:     "old-password1",
			Password:        "new-password1",
			PasswordConfirm: "new-password1",
		}).
		Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/change-password",
		strings.NewReader(`{"old_password":"old-password1","password":"new-password1","password_confirm":"new-password1"}`))
	req.Header.Set("Content-Type", "application/json")
	userRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"relogin":true`)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestHandler_ChangePassword_WrongOldPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	svc.EXPECT().
		ChangePassword(gomock.Any(), testUserID, gomock.Any()).
		Return(usererrors.ErrWrongOldPassword)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/change-password",
		strings.NewReader(`{"old_password":"guess","password":"new-password1","password_confirm":"new-password1"}`))
	req.Header.Set("Content-Type", "application/json")
	userRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Result().Cookies())
}
