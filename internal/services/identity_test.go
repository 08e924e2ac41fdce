package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/recovery-authority/internal/config"
	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/denmor86/recovery-authority/internal/storage"
	"github.com/denmor86/recovery-authority/internal/storage/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestNewIdentity(t *testing.T) {
	t.Run("Success. Create identity service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockProfiles := mocks.NewMockProfilesStorage(ctrl)
		config := config.DefaultConfig()

		identity := NewIdentity(config, mockProfiles)

		baseService, ok := identity.(*Identity)
		if !ok {
			t.Fatalf("Expected *Identity, got %T", identity)
		}
		if baseService.Profiles != mockProfiles {
			t.Errorf("Expected storage, got %v", baseService.Profiles)
		}
		if baseService.Passphrase != config.Server.AdminPassphrase {
			t.Errorf("Expected passphrase %s, got %s", config.Server.AdminPassphrase, baseService.Passphrase)
		}
	})
}

func TestRegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockProfiles := mocks.NewMockProfilesStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	identity := NewIdentity(config, mockProfiles)

	testCases := []struct {
		Name          string
		User          models.UserRequest
		SetupMocks    func()
		ExpectedID    string
		ExpectedError error
	}{
		{
			Name: "Success. User registered #1",
			User: models.UserRequest{Email: "user@mail.com", Password: "password", FullName: "John Doe"},
			SetupMocks: func() {
				mockProfiles.EXPECT().AddProfile(gomock.Any(), gomock.Any()).Return("user-1", nil)
			},
			ExpectedID:    "user-1",
			ExpectedError: nil,
		},
		{
			Name: "Error. Email already taken #2",
			User: models.UserRequest{Email: "user@mail.com", Password: "password"},
			SetupMocks: func() {
				mockProfiles.EXPECT().AddProfile(gomock.Any(), gomock.Any()).Return("", storage.ErrAlreadyExists)
			},
			ExpectedID:    "",
			ExpectedError: ErrUserAlreadyExists,
		},
		{
			Name:          "Error. Empty email #3",
			User:          models.UserRequest{Email: "", Password: "password"},
			SetupMocks:    func() {},
			ExpectedID:    "",
			ExpectedError: ErrFieldsRequired,
		},
		{
			Name:          "Error. Empty password #4",
			User:          models.UserRequest{Email: "user@mail.com", Password: ""},
			SetupMocks:    func() {},
			ExpectedID:    "",
			ExpectedError: ErrFieldsRequired,
		},
		{
			Name: "Error. Storage failure #5",
			User: models.UserRequest{Email: "user@mail.com", Password: "password"},
			SetupMocks: func() {
				mockProfiles.EXPECT().AddProfile(gomock.Any(), gomock.Any()).Return("", errors.New("failed to add profile"))
			},
			ExpectedID:    "",
			ExpectedError: errors.New("failed to add profile"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			userID, err := identity.RegisterUser(ctx, tc.User)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if userID != tc.ExpectedID {
				t.Errorf("Expected user id '%s', got: '%s'", tc.ExpectedID, userID)
			}
		})
	}
}

func TestRegisterAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockProfiles := mocks.NewMockProfilesStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	identity := NewIdentity(config, mockProfiles)

	testCases := []struct {
		Name          string
		Admin         models.AdminRequest
		SetupMocks    func()
		ExpectedID    string
		ExpectedError error
	}{
		{
			Name:  "Success. Admin registered #1",
			Admin: models.AdminRequest{Email: "admin@mail.com", Password: "password", Passphrase: "ADMIN_SECRET_2024"},
			SetupMocks: func() {
				mockProfiles.EXPECT().AddProfile(gomock.Any(), gomock.Any(), models.RoleAdmin).Return("admin-1", nil)
			},
			ExpectedID:    "admin-1",
			ExpectedError: nil,
		},
		{
			// неверная фраза отклоняется до обращения к хранилищу
			Name:          "Error. Invalid passphrase #2",
			Admin:         models.AdminRequest{Email: "admin@mail.com", Password: "password", Passphrase: "guess"},
			SetupMocks:    func() {},
			ExpectedID:    "",
			ExpectedError: ErrInvalidPassphrase,
		},
		{
			Name:          "Error. Empty passphrase #3",
			Admin:         models.AdminRequest{Email: "admin@mail.com", Password: "password"},
			SetupMocks:    func() {},
			ExpectedID:    "",
			ExpectedError: ErrInvalidPassphrase,
		},
		{
			Name:          "Error. Empty email #4",
			Admin:         models.AdminRequest{Email: "", Password: "password", Passphrase: "ADMIN_SECRET_2024"},
			SetupMocks:    func() {},
			ExpectedID:    "",
			ExpectedError: ErrFieldsRequired,
		},
		{
			Name:  "Error. Email already taken #5",
			Admin: models.AdminRequest{Email: "admin@mail.com", Password: "password", Passphrase: "ADMIN_SECRET_2024"},
			SetupMocks: func() {
				mockProfiles.EXPECT().AddProfile(gomock.Any(), gomock.Any(), models.RoleAdmin).Return("", storage.ErrAlreadyExists)
			},
			ExpectedID:    "",
			ExpectedError: ErrUserAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			userID, err := identity.RegisterAdmin(ctx, tc.Admin)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if userID != tc.ExpectedID {
				t.Errorf("Expected user id '%s', got: '%s'", tc.ExpectedID, userID)
			}
		})
	}
}

func TestAuthenticateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockProfiles := mocks.NewMockProfilesStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	identity := NewIdentity(config, mockProfiles)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	testCases := []struct {
		Name          string
		User          models.UserRequest
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name: "Success. User authenticated #1",
			User: models.UserRequest{Email: "user@mail.com", Password: "password"},
			SetupMocks: func() {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), "user@mail.com").Return(
					&models.ProfileData{UserID: "user-1", Email: "user@mail.com", PasswordHash: string(hash)}, nil)
			},
			ExpectedError: nil,
		},
		{
			Name: "Error. Unknown user #2",
			User: models.UserRequest{Email: "nobody@mail.com", Password: "password"},
			SetupMocks: func() {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), "nobody@mail.com").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: ErrInvalidCredentials,
		},
		{
			Name: "Error. Invalid password #3",
			User: models.UserRequest{Email: "user@mail.com", Password: "wrong"},
			SetupMocks: func() {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), "user@mail.com").Return(
					&models.ProfileData{UserID: "user-1", Email: "user@mail.com", PasswordHash: string(hash)}, nil)
			},
			ExpectedError: ErrInvalidCredentials,
		},
		{
			Name: "Error. Banned profile #4",
			User: models.UserRequest{Email: "user@mail.com", Password: "password"},
			SetupMocks: func() {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), "user@mail.com").Return(
					&models.ProfileData{UserID: "user-1", Email: "user@mail.com", PasswordHash: string(hash), Banned: true}, nil)
			},
			ExpectedError: ErrProfileBanned,
		},
		{
			Name: "Error. Storage failure #5",
			User: models.UserRequest{Email: "user@mail.com", Password: "password"},
			SetupMocks: func() {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), "user@mail.com").Return(nil, errors.New("failed to get profile"))
			},
			ExpectedError: errors.New("failed to get profile"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			profile, err := identity.AuthenticateUser(ctx, tc.User)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && profile == nil {
				t.Errorf("Expected profile, got nil")
			}
		})
	}
}

func TestGenerateJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockProfiles := mocks.NewMockProfilesStorage(ctrl)

	config := config.DefaultConfig()
	identity := NewIdentity(config, mockProfiles)

	t.Run("Success. Token contains identity claims", func(t *testing.T) {
		tokenString, err := identity.GenerateJWT("user-1", "user@mail.com")
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if tokenString == "" {
			t.Fatal("Expected token, got empty string")
		}

		token, err := identity.GetTokenAuth().Decode(tokenString)
		if err != nil {
			t.Fatalf("Expected no decode error, got: '%v'", err)
		}
		claims, err := token.AsMap(context.Background())
		if err != nil {
			t.Fatalf("Expected claims, got: '%v'", err)
		}
		if claims["user_id"] != "user-1" {
			t.Errorf("Expected user_id 'user-1', got: '%v'", claims["user_id"])
		}
		if claims["username"] != "user@mail.com" {
			t.Errorf("Expected username 'user@mail.com', got: '%v'", claims["username"])
		}
	})
}
