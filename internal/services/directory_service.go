package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LunaaVerse/ttm-sub002/internal/dto"
	"github.com/LunaaVerse/ttm-sub002/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DirectoryService is the read-mostly lookup surface for actors and
// reference data, plus the admin operations that maintain them.
type DirectoryService struct {
	db *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

// FindActiveStaff lists verified employees and admins eligible for primary
// assignment.
func (s *DirectoryService) FindActiveStaff() ([]models.User, error) {
	var users []models.User
	err := s.db.Where("role IN ? AND verified = ?", []models.Role{models.RoleEmployee, models.RoleAdmin}, true).
		Order("name").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return users, nil
}

// FindActiveTanods lists verified tanods eligible for follow-up assignment.
func (s *DirectoryService) FindActiveTanods() ([]models.User, error) {
	var users []models.User
	err := s.db.Where("role = ? AND verified = ?", models.RoleTanod, true).
		Order("name").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tanods: %w", err)
	}
	return users, nil
}

func (s *DirectoryService) GetActor(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load actor: %w", err)
	}
	return &user, nil
}

func (s *DirectoryService) ListBarangays() ([]models.Barangay, error) {
	var barangays []models.Barangay
	if err := s.db.Order("name").Find(&barangays).Error; err != nil {
		return nil, fmt.Errorf("failed to list barangays: %w", err)
	}
	return barangays, nil
}

// CreateUser provisions a staff or citizen account from the admin panel.
func (s *DirectoryService) CreateUser(req *dto.CreateUserRequest) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationError("name is required")
	}
	if strings.TrimSpace(req.Email) == "" || len(req.Password) < 8 {
		return nil, validationError("email required and password must be at least 8 characters")
	}
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, validationError("invalid role %q", req.Role)
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, validationError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
		Verified: req.Verified,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// ListConditionCosts returns the configured repair cost table.
func (s *DirectoryService) ListConditionCosts() ([]models.ConditionCost, error) {
	var costs []models.ConditionCost
	if err := s.db.Order("condition_type").Find(&costs).Error; err != nil {
		return nil, fmt.Errorf("failed to list condition costs: %w", err)
	}
	return costs, nil
}

// SetConditionCost creates or updates the unit cost for one condition type.
func (s *DirectoryService) SetConditionCost(conditionType string, unitCost int64) (*models.ConditionCost, error) {
	cond := models.ConditionType(conditionType)
	if !cond.Valid() {
		return nil, validationError("invalid condition_type %q", conditionType)
	}
	if unitCost < 0 {
		return nil, validationError("unit_cost must not be negative")
	}

	var cost models.ConditionCost
	err := s.db.Where("condition_type = ?", cond).First(&cost).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		cost = models.ConditionCost{ConditionType: cond, UnitCost: unitCost}
		if err := s.db.Create(&cost).Error; err != nil {
			return nil, fmt.Errorf("failed to create condition cost: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load condition cost: %w", err)
	default:
		if err := s.db.Model(&cost).Update("unit_cost", unitCost).Error; err != nil {
			return nil, fmt.Errorf("failed to update condition cost: %w", err)
		}
		cost.UnitCost = unitCost
	}
	return &cost, nil
}

// SeedConditionCosts inserts the default cost table rows that are missing.
// Existing rows are left untouched so admin edits survive restarts.
func SeedConditionCosts(db *gorm.DB) error {
	for cond, unit := range models.DefaultConditionCosts {
		var count int64
		if err := db.Model(&models.ConditionCost{}).Where("condition_type = ?", cond).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&models.ConditionCost{ConditionType: cond, UnitCost: unit}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
