package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"driverlogs/internal/models"
	"driverlogs/internal/repository"

	"github.com/google/uuid"
)

// Pagination bounds applied to every list operation. Handlers use them to
// report the effective page size when the caller omits or exceeds it.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Domain errors shared by the CRUD services.
var (
	ErrDriverNotFound   = errors.New("driver not found")
	ErrLogNotFound      = errors.New("daily log not found")
	ErrDuplicateLog     = errors.New("a log already exists for this driver and date")
	ErrDuplicateLicense = errors.New("a driver with this license number already exists")
)

// ErrValidation wraps all request-shape complaints so handlers can map them
// to 400 without enumerating causes.
var ErrValidation = errors.New("validation failed")

type DriverService struct {
	driverRepo repository.DriverRepo
}

func NewDriverService(driverRepo repository.DriverRepo) *DriverService {
	return &DriverService{driverRepo: driverRepo}
}

func validateDriver(d models.Driver) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(d.LicenseNumber) == "" {
		return fmt.Errorf("%w: licenseNumber is required", ErrValidation)
	}
	return nil
}

// Create stores a new driver under a fresh uuid.
func (s *DriverService) Create(ctx context.Context, d models.Driver) (*models.Driver, error) {
	if err := validateDriver(d); err != nil {
		return nil, err
	}
	d.ID = uuid.NewString()
	if err := s.driverRepo.Create(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDuplicateLicense) {
			return nil, ErrDuplicateLicense
		}
		return nil, err
	}
	// Re-read so the caller sees repo-set timestamps.
	return s.driverRepo.GetByID(ctx, d.ID)
}

func (s *DriverService) Get(ctx context.Context, id string) (*models.Driver, error) {
	d, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDriverNotFound
	}
	return d, nil
}

// List returns one page of drivers plus the total match count.
func (s *DriverService) List(ctx context.Context, f DriverFilter) ([]models.Driver, int, error) {
	all, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := all
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		matched = matched[:0:0]
		for _, d := range all {
			if strings.Contains(strings.ToLower(d.Name), q) ||
				strings.Contains(strings.ToLower(d.LicenseNumber), q) {
				matched = append(matched, d)
			}
		}
	}

	total := len(matched)
	page := paginate(matched, f.Page, f.PageSize)
	return page, total, nil
}

func (s *DriverService) Update(ctx context.Context, d models.Driver) (*models.Driver, error) {
	if err := validateDriver(d); err != nil {
		return nil, err
	}
	if err := s.driverRepo.Update(ctx, d); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDriverNotFound
		}
		if errors.Is(err, repository.ErrDuplicateLicense) {
			return nil, ErrDuplicateLicense
		}
		return nil, err
	}
	return s.driverRepo.GetByID(ctx, d.ID)
}

func (s *DriverService) Delete(ctx context.Context, id string) error {
	if err := s.driverRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDriverNotFound
		}
		return err
	}
	return nil
}

// paginate slices one page out of items; page is 1-based.
func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
