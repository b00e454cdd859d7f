package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Rakhulsr/figurine-shop/app/helpers"
	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/Rakhulsr/figurine-shop/app/storage"
	"github.com/go-playground/validator/v10"
)

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CredentialsInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type AuthService struct {
	store        *state.Store
	local        storage.LocalStore
	settingsRepo repositories.SettingsRepositoryImpl
	validate     *validator.Validate
}

func NewAuthService(store *state.Store, local storage.LocalStore, settingsRepo repositories.SettingsRepositoryImpl) *AuthService {
	return &AuthService{
		store:        store,
		local:        local,
		settingsRepo: settingsRepo,
		validate:     validator.New(),
	}
}

// credentials prefers the remote settings document and falls back to the copy on this device.
func (s *AuthService) credentials(ctx context.Context) (*models.AdminCredentials, error) {
	creds, err := s.settingsRepo.GetAdminCredentials(ctx)
	if err != nil {
		log.Printf("AuthService.credentials: remote settings unavailable, trying local: %v", err)
	}
	if creds != nil {
		return creds, nil
	}

	var local models.AdminCredentials
	found, err := s.local.Load(storage.KeyAdminCredentials, &local)
	if err != nil {
		return nil, fmt.Errorf("failed to read local credentials: %w", err)
	}
	if !found || local.PasswordHash == "" {
		return nil, ErrNoCredentials
	}
	return &local, nil
}

// Login checks the credentials and marks the device as signed in.
func (s *AuthService) Login(ctx context.Context, deviceID string, in LoginInput) (models.Session, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return models.Session{}, err
	}
	creds, err := s.credentials(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if strings.TrimSpace(in.Username) != creds.Username || !helpers.PasswordCompare(creds.PasswordHash, []byte(in.Password)) {
		return models.Session{}, ErrInvalidCredentials
	}

	s.store.Dispatch(state.Login{DeviceID: deviceID, Username: creds.Username})
	return s.store.Snapshot().Device(deviceID).Session, nil
}

func (s *AuthService) Logout(deviceID string) {
	s.store.Dispatch(state.Logout{DeviceID: deviceID})
}

// SetCredentials replaces the admin credentials. The local copy is written first so a login
// keeps working while the remote store is down.
func (s *AuthService) SetCredentials(ctx context.Context, in CredentialsInput) error {
	if err := validateStruct(s.validate, in); err != nil {
		return err
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return err
	}
	creds := models.AdminCredentials{Username: strings.TrimSpace(in.Username), PasswordHash: hash}

	if err := s.local.Save(storage.KeyAdminCredentials, creds); err != nil {
		return fmt.Errorf("failed to save local credentials: %w", err)
	}
	if err := s.settingsRepo.SaveAdminCredentials(ctx, creds); err != nil {
		log.Printf("AuthService.SetCredentials: credentials saved locally only: %v", err)
	}
	return nil
}
