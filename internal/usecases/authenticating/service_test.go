package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/lfreitas/barber-manager-api/infrastructure/repository/mocks"
	"github.com/lfreitas/barber-manager-api/internal/config"
	"github.com/lfreitas/barber-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(ctrl *gomock.Controller) (Authenticator, *mocks.MockUserRepository, *mocks.MockTenantRepository) {
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)

	cfg := &config.Config{SecretKey: "test_secret_key"}

	return NewService(mockUserRepo, mockTenantRepo, cfg), mockUserRepo, mockTenantRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockUserRepo, _ := newAuthService(ctrl)

	user := &domain.User{
		ID:           1,
		TenantID:     "TEN001",
		Name:         "Carlos",
		Email:        "carlos@demo.com",
		PasswordHash: hashPassword(t, "Senha123"),
		Active:       true,
		RoleID:       2,
	}

	mockUserRepo.EXPECT().GetUserByEmail("carlos@demo.com").Return(user, nil)

	token, err := service.LoginUser("Carlos@Demo.com ", "Senha123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// O token emitido carrega as claims do usuário, incluindo o tenant
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "TEN001", claims.UserTenantID)
	assert.Equal(t, 2, claims.UserRoleID)
}

func TestService_LoginUser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(mockUserRepo *mocks.MockUserRepository)
	}{
		{
			name:     "Email vazio",
			email:    "",
			password: "Senha123",
			setup:    func(mockUserRepo *mocks.MockUserRepository) {},
		},
		{
			name:     "Usuário não encontrado",
			email:    "ninguem@demo.com",
			password: "Senha123",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().GetUserByEmail("ninguem@demo.com").Return(nil, nil)
			},
		},
		{
			name:     "Conta desativada",
			email:    "inativo@demo.com",
			password: "Senha123",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().GetUserByEmail("inativo@demo.com").Return(&domain.User{
					ID:     2,
					Email:  "inativo@demo.com",
					Active: false,
				}, nil)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "carlos@demo.com",
			password: "SenhaErrada1",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().GetUserByEmail("carlos@demo.com").Return(&domain.User{
					ID:           1,
					Email:        "carlos@demo.com",
					PasswordHash: "$2a$04$invalidhashinvalidhashinvalidhashinvalidhashinvalid",
					Active:       true,
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mockUserRepo, _ := newAuthService(ctrl)
			tt.setup(mockUserRepo)

			token, err := service.LoginUser(tt.email, tt.password)

			assert.Error(t, err)
			assert.Empty(t, token)

			var authErr *AuthError
			assert.ErrorAs(t, err, &authErr)
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockUserRepo, mockTenantRepo := newAuthService(ctrl)

	mockTenantRepo.EXPECT().GetByID("TEN001").Return(&domain.Tenant{ID: "TEN001"}, nil)
	mockUserRepo.EXPECT().GetUserByEmail("novo@demo.com").Return(nil, nil)
	mockUserRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
		// A senha nunca é persistida em texto plano
		assert.NotEqual(t, "Senha123", u.PasswordHash)
		assert.False(t, u.Active)
		assert.Equal(t, 3, u.RoleID)
		return u, nil
	})

	user, err := service.CreateUser(&domain.User{
		TenantID:     "TEN001",
		Name:         "Novo",
		Lastname:     "Usuário",
		Email:        "Novo@Demo.com",
		PasswordHash: "Senha123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "novo@demo.com", user.Email)
}

func TestService_CreateUser_TenantNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockTenantRepo := newAuthService(ctrl)

	mockTenantRepo.EXPECT().GetByID("TEN999").Return(nil, nil)

	user, err := service.CreateUser(&domain.User{
		TenantID:     "TEN999",
		Name:         "Novo",
		Lastname:     "Usuário",
		Email:        "novo@demo.com",
		PasswordHash: "Senha123",
	})

	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newAuthService(ctrl)

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{"Senha forte", "Senha123", false},
		{"Curta demais", "Ab1", true},
		{"Sem maiúscula", "senha123", true},
		{"Sem minúscula", "SENHA123", true},
		{"Sem número", "SenhaForte", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrWeakPassword)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newAuthService(ctrl)

	claims, err := service.ValidateToken("token-invalido")

	assert.Error(t, err)
	assert.Nil(t, claims)
}
