package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestao-pro/internal/application/auth"
	"github.com/seu-usuario/gestao-pro/internal/application/dto"
	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	apphttp "github.com/seu-usuario/gestao-pro/internal/interfaces/http"
)

// fakeUserRepo repositório de usuários em memória para os tests de handler.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// buildAuthApp monta o router completo só com o caso de uso de auth; as demais
// rotas ficam registradas mas não são exercitadas aqui.
func buildAuthApp() *fiber.App {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    uc,
		JWTSecret: testJWTSecret,
	})
	return app
}

// postJSON lança um POST com body JSON e devolve a resposta.
func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestAuthHandler_RegisterELogin(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/api/auth/register", dto.RegisterRequest{
		Email:    "maria@exemplo.com",
		Password: "gestao123",
		Name:     "Maria Silva",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user dto.UserResponse
	decodeJSON(t, resp, &user)
	assert.Equal(t, "maria@exemplo.com", user.Email)
	assert.Equal(t, "active", user.Status)
	assert.NotEmpty(t, user.ID)

	resp = postJSON(t, app, "/api/auth/login", dto.LoginRequest{
		Email:    "maria@exemplo.com",
		Password: "gestao123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login dto.LoginResponse
	decodeJSON(t, resp, &login)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, user.ID, login.User.ID)
}

func TestAuthHandler_RegisterEmailDuplicado_Retorna409(t *testing.T) {
	app := buildAuthApp()

	in := dto.RegisterRequest{Email: "maria@exemplo.com", Password: "gestao123"}
	resp := postJSON(t, app, "/api/auth/register", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/auth/register", in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodeJSON(t, resp, &errResp)
	assert.Equal(t, "EMAIL_EXISTS", errResp.Code)
}

func TestAuthHandler_LoginSenhaErrada_Retorna401(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/api/auth/register", dto.RegisterRequest{
		Email:    "maria@exemplo.com",
		Password: "gestao123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/auth/login", dto.LoginRequest{
		Email:    "maria@exemplo.com",
		Password: "senha-errada",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHandler_LoginUsuarioInexistente_Retorna401(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/api/auth/login", dto.LoginRequest{
		Email:    "ninguem@exemplo.com",
		Password: "gestao123",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
