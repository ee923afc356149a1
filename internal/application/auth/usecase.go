package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/domain"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
	"github.com/opencomercio/gestion-api/pkg/format"
	"github.com/opencomercio/gestion-api/pkg/jwt"
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	roleRepo    repository.RoleRepository
	tokens      *jwt.Manager
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	roleRepo repository.RoleRepository,
	tokens *jwt.Manager,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, roleRepo: roleRepo, tokens: tokens}
}

// RegisterCompany da de alta una empresa (onboarding). Es el paso previo al
// registro de usuarios: RegisterUser exige que la empresa ya exista.
// Devuelve ErrDuplicate si el NIT ya está registrado.
func (uc *AuthUseCase) RegisterCompany(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.NIT == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		NIT:       in.NIT,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{ID: company.ID, Name: company.Name, NIT: company.NIT, Status: company.Status}, nil
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe en esa company.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByEmailAndCompany(ctx, in.Email, in.CompanyID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound // empresa no existe
	}
	role, err := uc.roleRepo.GetByID(ctx, in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound // rol no existe
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    in.CompanyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		RoleID:       role.ID,
		RoleName:     role.Name,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, estampa last_login_at, genera JWT y retorna
// token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	if err := uc.userRepo.SetLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now
	token, err := uc.tokens.Sign(jwt.Session{UserID: user.ID, CompanyID: user.CompanyID, Role: user.RoleName})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		RoleID:      u.RoleID,
		RoleName:    u.RoleName,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
	}
	if u.LastLoginAt != nil {
		resp.LastLogin = format.ShortDate(*u.LastLoginAt)
	}
	return resp
}
