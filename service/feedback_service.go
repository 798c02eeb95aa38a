package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"hecs-calculator/domain"
	"hecs-calculator/repository"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type FeedbackService struct {
	repo repository.FeedbackRepository
	now  func() time.Time
}

func NewFeedbackService(repo repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// sanitizeText neutralises markup in free text before it is stored. Only
// '<' is escaped so quotes and ampersands survive as typed.
func sanitizeText(s string) string {
	return strings.ReplaceAll(s, "<", "&lt;")
}

func (s *FeedbackService) Submit(
	ctx context.Context,
	input domain.FeedbackInput,
) (domain.Feedback, error) {

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	// los límites se aplican al texto tal como lo escribió el usuario
	if err := validateFeedbackInput(input); err != nil {
		return domain.Feedback{}, err
	}

	now := s.now()
	fb := domain.Feedback{
		ID:          uuid.NewString(),
		Type:        input.Type,
		Title:       sanitizeText(input.Title),
		Description: sanitizeText(input.Description),
		Email:       input.Email,
		Status:      domain.FeedbackStatusNew,
		Priority:    domain.FeedbackPriorityMedium,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.SaveFeedback(ctx, fb); err != nil {
		return domain.Feedback{}, fmt.Errorf("saving feedback: %w", err)
	}

	return fb, nil
}
