package domain

import "time"

type FeedbackType string

const (
	FeedbackBug     FeedbackType = "bug"
	FeedbackFeature FeedbackType = "feature"
	FeedbackGeneral FeedbackType = "general"
)

func (t FeedbackType) Valid() bool {
	switch t {
	case FeedbackBug, FeedbackFeature, FeedbackGeneral:
		return true
	}
	return false
}

type FeedbackStatus string

const (
	FeedbackStatusNew        FeedbackStatus = "new"
	FeedbackStatusInProgress FeedbackStatus = "in-progress"
	FeedbackStatusResolved   FeedbackStatus = "resolved"
	FeedbackStatusClosed     FeedbackStatus = "closed"
)

type FeedbackPriority string

const (
	FeedbackPriorityLow    FeedbackPriority = "low"
	FeedbackPriorityMedium FeedbackPriority = "medium"
	FeedbackPriorityHigh   FeedbackPriority = "high"
)

type FeedbackInput struct {
	Type        FeedbackType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Email       string       `json:"email"`
}

type Feedback struct {
	ID          string           `json:"id"`
	Type        FeedbackType     `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Email       string           `json:"email,omitempty"`
	Status      FeedbackStatus   `json:"status"`
	Priority    FeedbackPriority `json:"priority"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
