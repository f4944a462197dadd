package service

import (
	"fmt"

	"driverlogs/internal/hos"
	"driverlogs/internal/models"
)

// ComplianceService evaluates duty statuses on demand, without touching
// storage. Used by the dry-run compliance endpoint.
type ComplianceService struct{}

func NewComplianceService() *ComplianceService { return &ComplianceService{} }

// Check runs the full rule evaluation over the given statuses. An empty
// list is rejected here: the endpoint is for checking a proposed day, and
// a day with no statuses is a request-shape mistake, not a compliant day.
func (s *ComplianceService) Check(statuses []models.DutyStatus) (models.ComplianceResult, error) {
	if len(statuses) == 0 {
		return models.ComplianceResult{}, fmt.Errorf("%w: dutyStatuses must not be empty", ErrValidation)
	}
	return hos.CheckCompliance(statuses), nil
}
