//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"tutorlink/internal/domain/user"
	"tutorlink/internal/pkg/jwt"
	"tutorlink/internal/pkg/password"
	"tutorlink/internal/usecase"
	"tutorlink/tests/common/builder"
	usecasemock "tutorlink/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testPassword = "S3curePass!"

type AuthUseCaseTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	userRepo   *usecasemock.MockUserRepository
	jwtService *jwt.Service
	hashed     string
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) SetupSuite() {
	hashed, err := password.Hash(testPassword)
	require.NoError(s.T(), err)
	s.hashed = hashed
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = usecasemock.NewMockUserRepository(s.ctrl)
	s.jwtService = jwt.NewService("test-secret-key", time.Hour)
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthUseCaseTestSuite) credentials(email string) user.Credentials {
	creds, err := user.NewCredentials(email, testPassword)
	require.NoError(s.T(), err)
	return creds
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	ub := builder.NewUserBuilder()

	s.Run("valid credentials return a verifiable token", func() {
		rm := ub.BuildRM()
		creds := s.credentials(ub.Email)
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), creds.Email()).Return(rm, s.hashed, nil)
		s.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), rm.ID).Return(nil)

		uc := usecase.NewAuthUseCase(s.userRepo, s.jwtService)
		token, got, err := uc.Login(context.Background(), creds)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), rm, got)

		claims, err := s.jwtService.ValidateToken(token)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), rm.ID, claims.UserID)
		assert.Equal(s.T(), rm.Role, claims.Role)
	})

	s.Run("unknown email", func() {
		creds := s.credentials("nobody@example.com")
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), creds.Email()).
			Return(nil, "", usecase.ErrUserNotFound)

		uc := usecase.NewAuthUseCase(s.userRepo, s.jwtService)
		_, _, err := uc.Login(context.Background(), creds)
		assert.ErrorIs(s.T(), err, usecase.ErrUserNotFound)
	})

	s.Run("wrong password", func() {
		rm := ub.BuildRM()
		wrong, err := user.NewCredentials(ub.Email, "wrong-password")
		require.NoError(s.T(), err)
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), wrong.Email()).Return(rm, s.hashed, nil)

		uc := usecase.NewAuthUseCase(s.userRepo, s.jwtService)
		_, _, err = uc.Login(context.Background(), wrong)
		assert.ErrorIs(s.T(), err, usecase.ErrInvalidCredentials)
	})

	s.Run("inactive account", func() {
		rm := builder.NewUserBuilder().AsInactive().BuildRM()
		creds := s.credentials(rm.Email)
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), creds.Email()).Return(rm, s.hashed, nil)

		uc := usecase.NewAuthUseCase(s.userRepo, s.jwtService)
		_, _, err := uc.Login(context.Background(), creds)
		assert.ErrorIs(s.T(), err, usecase.ErrUserInactive)
	})
}

func (s *AuthUseCaseTestSuite) TestGetCurrentUser() {
	ub := builder.NewUserBuilder()

	s.Run("active user", func() {
		rm := ub.BuildRM()
		s.userRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		uc := usecase.NewAuthUseCase(s.userRepo, s.jwtService)
		got, err := uc.GetCurrentUser(context.Background(), rm.ID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), rm, got)
	})

	s.Run("inactive user", func() {
		rm := builder.NewUserBuilder().AsInactive().BuildRM()
		s.userRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		uc := usecase.NewAuthUseCase(s.userRepo, s.jwtService)
		_, err := uc.GetCurrentUser(context.Background(), rm.ID)
		assert.ErrorIs(s.T(), err, usecase.ErrUserInactive)
	})
}

func (s *AuthUseCaseTestSuite) TestValidateToken() {
	ub := builder.NewUserBuilder()

	s.Run("round trip", func() {
		token, err := s.jwtService.GenerateToken(ub.ID, user.RoleStudent)
		require.NoError(s.T(), err)

		uc := usecase.NewAuthUseCase(s.userRepo, s.jwtService)
		id, role, err := uc.ValidateToken(token)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), ub.ID, id)
		assert.Equal(s.T(), user.RoleStudent, role)
	})

	s.Run("garbage token", func() {
		uc := usecase.NewAuthUseCase(s.userRepo, s.jwtService)
		_, _, err := uc.ValidateToken("not.a.jwt")
		assert.ErrorIs(s.T(), err, usecase.ErrTokenValidation)
	})

	s.Run("token signed with another secret", func() {
		other := jwt.NewService("different-secret", time.Hour)
		token, err := other.GenerateToken(ub.ID, user.RoleStudent)
		require.NoError(s.T(), err)

		uc := usecase.NewAuthUseCase(s.userRepo, s.jwtService)
		_, _, err = uc.ValidateToken(token)
		assert.ErrorIs(s.T(), err, usecase.ErrTokenValidation)
	})
}
