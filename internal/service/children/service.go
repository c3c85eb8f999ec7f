package children

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	"github.com/m04kA/SMC-NurseryService/internal/service/children/models"
)

// Service сервис для работы с детьми
type Service struct {
	childRepo    ChildRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса детей
func NewService(childRepo ChildRepository, logger Logger) *Service {
	return &Service{
		childRepo:    childRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create регистрирует ребенка родителя
func (s *Service) Create(ctx context.Context, req *models.CreateChildRequest) (*models.ChildResponse, error) {
	s.logger.Info("Create: registering child for parent=%s", req.ParentID)

	now := s.timeProvider.Now()

	child, err := toDomainChild(req, now)
	if err != nil {
		s.logger.Warn("Create: validation failed for parent=%s: %v", req.ParentID, err)
		return nil, err
	}

	created, err := s.childRepo.Create(ctx, child)
	if err != nil {
		s.logger.Error("Create: repository error for parent=%s: %v", req.ParentID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered child id=%s", created.ID)
	return models.FromDomainChild(created, now), nil
}

// GetParentChildren получает детей родителя
// Родитель видит только своих детей
func (s *Service) GetParentChildren(ctx context.Context, parentID, requesterID string) (*models.ChildListResponse, error) {
	if parentID != requesterID {
		s.logger.Warn("GetParentChildren: user=%s requested children of parent=%s", requesterID, parentID)
		return nil, ErrAccessDenied
	}

	children, err := s.childRepo.GetByParentID(ctx, parentID)
	if err != nil {
		s.logger.Error("GetParentChildren: repository error for parent=%s: %v", parentID, err)
		return nil, fmt.Errorf("%w: GetParentChildren - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetParentChildren: fetched %d children for parent=%s", len(children), parentID)
	return models.FromDomainChildList(children, s.timeProvider.Now()), nil
}

func toDomainChild(req *models.CreateChildRequest, now time.Time) (*domain.Child, error) {
	if strings.TrimSpace(req.ParentID) == "" {
		return nil, fmt.Errorf("%w: parentId is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxChildNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxChildNameLength)
	}

	dob, err := time.Parse(domain.DateFormat, req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dateOfBirth format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	if dob.After(now) {
		return nil, fmt.Errorf("%w: dateOfBirth is in the future", ErrInvalidInput)
	}

	if req.SpecialRequirements != nil && len(*req.SpecialRequirements) > domain.MaxSpecialRequirementsLen {
		return nil, fmt.Errorf("%w: specialRequirements must be at most %d characters",
			ErrInvalidInput, domain.MaxSpecialRequirementsLen)
	}

	return &domain.Child{
		ParentID:            req.ParentID,
		Name:                name,
		DateOfBirth:         dob,
		SpecialRequirements: req.SpecialRequirements,
	}, nil
}
