package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencomercio/gestion-api/internal/application/auth"
	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/domain"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company // por ID
	byNIT     map[string]bool
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}, byNIT: map[string]bool{}}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	if f.byNIT[c.NIT] {
		return domain.ErrDuplicate
	}
	f.byNIT[c.NIT] = true
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return f.companies[id], nil
}

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmailAndCompany(_ context.Context, email, companyID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.CompanyID == companyID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) SetLastLogin(_ context.Context, id string, at time.Time) error {
	if u, ok := f.users[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

type fakeRoleRepo struct {
	roles map[string]*entity.Role
}

func (f *fakeRoleRepo) List(_ context.Context) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, r := range f.roles {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id string) (*entity.Role, error) {
	return f.roles[id], nil
}

func buildAuthUC(t *testing.T, companies *fakeCompanyRepo) *auth.AuthUseCase {
	t.Helper()
	tokens, err := jwt.NewManager("secret-de-test", "gestion-api-test", 60)
	require.NoError(t, err)
	roles := &fakeRoleRepo{roles: map[string]*entity.Role{
		"rol-1": {ID: "rol-1", Name: entity.RoleAdmin},
	}}
	return auth.NewAuthUseCase(newFakeUserRepo(), companies, roles, tokens)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterCompany (onboarding)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterCompany_CreaEmpresaActiva(t *testing.T) {
	companies := newFakeCompanyRepo()
	uc := buildAuthUC(t, companies)

	out, err := uc.RegisterCompany(context.Background(), dto.CreateCompanyRequest{
		Name: "Comercial Andina", NIT: "900123456-7",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "active", out.Status)

	stored, _ := companies.GetByID(context.Background(), out.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "900123456-7", stored.NIT)
}

func TestRegisterCompany_NITDuplicadoRetornaConflicto(t *testing.T) {
	companies := newFakeCompanyRepo()
	uc := buildAuthUC(t, companies)

	_, err := uc.RegisterCompany(context.Background(), dto.CreateCompanyRequest{Name: "Una", NIT: "900123456-7"})
	require.NoError(t, err)

	_, err = uc.RegisterCompany(context.Background(), dto.CreateCompanyRequest{Name: "Otra", NIT: "900123456-7"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, companies.companies, 1)
}

func TestRegisterCompany_SinNombreONITEsInvalido(t *testing.T) {
	uc := buildAuthUC(t, newFakeCompanyRepo())

	_, err := uc.RegisterCompany(context.Background(), dto.CreateCompanyRequest{NIT: "900123456-7"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterCompany(context.Background(), dto.CreateCompanyRequest{Name: "Sin NIT"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_RequiereEmpresaExistente(t *testing.T) {
	companies := newFakeCompanyRepo()
	uc := buildAuthUC(t, companies)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		CompanyID: "no-existe",
		Email:     "ana@x.com",
		Password:  "clave-segura",
		RoleID:    "rol-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterUser_TrasOnboardingFunciona(t *testing.T) {
	companies := newFakeCompanyRepo()
	uc := buildAuthUC(t, companies)

	company, err := uc.RegisterCompany(context.Background(), dto.CreateCompanyRequest{Name: "Comercial Andina", NIT: "900123456-7"})
	require.NoError(t, err)

	user, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		CompanyID: company.ID,
		Email:     "ana@x.com",
		Password:  "clave-segura",
		Name:      "Ana Pérez",
		RoleID:    "rol-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.RoleName)
	assert.True(t, user.Active)
}
