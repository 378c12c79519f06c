package advisory

import (
	"Spendwise-Backend/domain"
	"context"
)

type (
	AdvisoryLogService interface {
		GetAdvisoryLogs(ctx context.Context, userID string) ([]domain.AdvisoryLogResponse, error)
	}

	advisoryLogService struct {
		advisoryRepository AdvisoryRepository
	}
)

func NewAdvisoryLogService(advisoryRepository AdvisoryRepository) AdvisoryLogService {
	return &advisoryLogService{advisoryRepository: advisoryRepository}
}

func (s *advisoryLogService) GetAdvisoryLogs(ctx context.Context, userID string) ([]domain.AdvisoryLogResponse, error) {
	logs, err := s.advisoryRepository.GetAdvisoryLogsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.AdvisoryLogResponse, 0, len(logs))
	for _, advisoryLog := range logs {
		response = append(response, domain.AdvisoryLogResponse{
			ID:        advisoryLog.ID.String(),
			InputText: advisoryLog.InputText,
			Advice:    advisoryLog.Advice,
			Status:    advisoryLog.Status,
			CreatedAt: advisoryLog.CreatedAt,
		})
	}
	return response, nil
}
