package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claricinhas/atelier-api/internal/application/dto"
	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func testConfig() JWTConfig {
	return JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "atelier-api-test"}
}

func TestAuth_RegisterYLogin(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testConfig())

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "clara@claricinhas.test",
		Password: "segredo-forte",
		Name:     "Clara",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", user.Status)

	out, err := uc.Login(dto.LoginRequest{Email: "clara@claricinhas.test", Password: "segredo-forte"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestAuth_Register_EmailDuplicado(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testConfig())
	in := dto.RegisterRequest{Email: "clara@claricinhas.test", Password: "segredo-forte"}

	_, err := uc.RegisterUser(in)
	require.NoError(t, err)

	_, err = uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestAuth_Register_PasswordCorta(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testConfig())
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "clara@claricinhas.test", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuth_Login_CredencialesInvalidas(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testConfig())
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "clara@claricinhas.test", Password: "segredo-forte"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "clara@claricinhas.test", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@claricinhas.test", Password: "segredo-forte"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
