// Package auth implements the demo authentication boundary: a fixed
// three-user credential table, one per role, with the active session
// persisted in the document store.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
	"github.com/mohammedahmeduddin04/DocAI/internal/storage"
)

// ErrInvalidCredentials is returned when the email or password does
// not match the demo credential table.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotAuthenticated is returned when no session is active.
var ErrNotAuthenticated = errors.New("not authenticated")

// demoPassword is shared by every demo account.
const demoPassword = "password"

// demoUsers is the fixed credential table, one account per role.
var demoUsers = map[domain.UserRole]domain.User{
	domain.RolePatient: {
		ID:                "p1",
		Name:              "John Doe",
		Email:             "patient@docai.com",
		Role:              domain.RolePatient,
		Phone:             "+91 9876543210",
		DOB:               "1990-01-15",
		Gender:            "Male",
		BloodGroup:        "O+",
		Address:           "123, Jubilee Hills, Hyderabad, Telangana - 500033",
		PreferredHospital: "Apollo Hospitals, Jubilee Hills",
		Allergies:         "Peanuts, Shellfish, Dust Mites",
		ChronicConditions: "Mild Seasonal Asthma",
		EmergencyContact:  "Jane Doe",
		EmergencyPhone:    "+91 9876543211",
		InsuranceProvider: "Star Health Insurance",
		InsurancePolicy:   "SH-2024-99182",
	},
	domain.RoleDoctor: {
		ID:                  "d1",
		Name:                "Dr. Sarah Smith",
		Email:               "doctor@docai.com",
		Role:                domain.RoleDoctor,
		Specialty:           "Neurology",
		LicenseNumber:       "MD-AI-9922-K",
		HospitalAffiliation: "DocAI Research Hospital & Clinic",
		ConsultationFee:     1500,
		YearsOfExperience:   14,
		Bio:                 "Senior Neurologist specializing in neuro-degenerative diseases, cognitive therapy, and AI-assisted clinical diagnosis.",
	},
	domain.RoleAdmin: {
		ID:            "a1",
		Name:          "Admin Supervisor",
		Email:         "admin@docai.com",
		Role:          domain.RoleAdmin,
		AccessLevel:   "Level 5 (Superuser)",
		Department:    "Global Health Surveillance & Crisis Management",
		ClearanceCode: "GAMMA-X-88",
		PersonnelCode: "ADM-2024-001",
	},
}

// Service manages the single active session.
type Service struct {
	backend storage.Store
	logger  *logrus.Logger
}

// NewService creates an authentication service over the given store.
func NewService(backend storage.Store, logger *logrus.Logger) *Service {
	return &Service{backend: backend, logger: logger}
}

// Login authenticates against the demo credential table and persists
// the session. Email matching is case-insensitive.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, error) {
	for _, u := range demoUsers {
		if strings.EqualFold(u.Email, email) && password == demoPassword {
			if err := s.saveSession(ctx, u); err != nil {
				return domain.User{}, err
			}
			s.logger.WithFields(logrus.Fields{
				"user_id": u.ID,
				"role":    u.Role,
			}).Info("User logged in")
			return u, nil
		}
	}
	return domain.User{}, ErrInvalidCredentials
}

// Logout clears the active session.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.backend.Delete(ctx, storage.KeyUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the active session's user.
func (s *Service) CurrentUser(ctx context.Context) (domain.User, error) {
	raw, found, err := s.backend.Get(ctx, storage.KeyUser)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to read session: %w", err)
	}
	if !found {
		return domain.User{}, ErrNotAuthenticated
	}

	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return domain.User{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return u, nil
}

// UpdateProfile replaces the active user's profile and persists it.
// ID and role are not updatable.
func (s *Service) UpdateProfile(ctx context.Context, updated domain.User) (domain.User, error) {
	current, err := s.CurrentUser(ctx)
	if err != nil {
		return domain.User{}, err
	}

	updated.ID = current.ID
	updated.Role = current.Role
	if err := s.saveSession(ctx, updated); err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

func (s *Service) saveSession(ctx context.Context, u domain.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.backend.Set(ctx, storage.KeyUser, raw); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
