package account_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"timetrack/internal/account"
	accounterrors "timetrack/internal/account/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	loginFn    func(ctx context.Context, req account.LoginRequest) (account.LoginResponse, error)
	registerFn func(ctx context.Context, req account.RegisterRequest) (account.RegisterResponse, error)
}

func (f *fakeService) Login(ctx context.Context, req account.LoginRequest) (account.LoginResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeService) Register(ctx context.Context, req account.RegisterRequest) (account.RegisterResponse, error) {
	return f.registerFn(ctx, req)
}

func accountRouter(svc account.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := account.NewHandler(svc)
	r.POST("/accounts/login", h.Login)
	r.POST("/accounts/logout", h.Logout)
	r.POST("/accounts/registration", h.Register)
	return r
}

func TestHandler_Login_SetsCookieAndRedirect(t *testing.T) {
	svc := &fakeService{
		loginFn: func(ctx context.Context, req account.LoginRequest) (account.LoginResponse, error) {
			return account.LoginResponse{Token: "signed-token", Redirect: "/user/calendar"}, nil
		},
	}
	r := accountRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/accounts/login",
		strings.NewReader(`{"email":"worker@example.com","password":"swordfish123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/user/calendar"`)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestHandler_Login_HonorsNextParam(t *testing.T) {
	svc := &fakeService{
		loginFn: func(ctx context.Context, req account.LoginRequest) (account.LoginResponse, error) {
			return account.LoginResponse{Token: "signed-token", Redirect: "/user/calendar"}, nil
		},
	}
	r := accountRouter(svc)

	cases := map[string]struct {
		next string
		want string
	}{
		"rooted path wins":         {next: "/user/tasks/2023/5/2", want: "/user/tasks/2023/5/2"},
		"external url ignored":     {next: "https://evil.example", want: "/user/calendar"},
		"protocol relative denied": {next: "//evil.example", want: "/user/calendar"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/accounts/login?next="+url.QueryEscape(tc.next),
				strings.NewReader(`{"email":"worker@example.com","password":"swordfish123"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"redirect":"`+tc.want+`"`)
		})
	}
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &fakeService{
		loginFn: func(ctx context.Context, req account.LoginRequest) (account.LoginResponse, error) {
			return account.LoginResponse{}, accounterrors.ErrInvalidCredentials
		},
	}
	r := accountRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/accounts/login",
		strings.NewReader(`{"email":"worker@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestHandler_Logout_ClearsCookie(t *testing.T) {
	r := accountRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/accounts/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestHandler_Register_Created(t *testing.T) {
	svc := &fakeService{
		registerFn: func(ctx context.Context, req account.RegisterRequest) (account.RegisterResponse, error) {
			return account.RegisterResponse{ID: "id-1", Email: "worker@example.com", Redirect: "/accounts/login"}, nil
		},
	}
	r := accountRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/accounts/registration",
		strings.NewReader(`{"code":"Ab3dEf78","password":"swordfish123","password_confirm":"swordfish123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/accounts/login"`)
}
