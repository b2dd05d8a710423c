package domain

import "errors"

const (
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"
)

var (
	ErrInvalidObjectID     = errors.New("objectId is required")
	ErrInvalidStatus       = errors.New("status must be ACTIVE or PAUSED")
	ErrInvalidBudget       = errors.New("dailyBudget must be greater than zero")
	ErrInvalidCampaignName = errors.New("campaign name is required")
	ErrInvalidObjective    = errors.New("campaign objective is required")
)

type StatusUpdateRequest struct {
	ObjectID string `json:"objectId"`
	Status   string `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if r.ObjectID == "" {
		return ErrInvalidObjectID
	}
	if r.Status != StatusActive && r.Status != StatusPaused {
		return ErrInvalidStatus
	}
	return nil
}

// BudgetUpdateRequest recebe o orçamento diário na unidade exibida
type BudgetUpdateRequest struct {
	AdSetID     string  `json:"adsetId"`
	DailyBudget float64 `json:"dailyBudget"`
}

func (r BudgetUpdateRequest) Validate() error {
	if r.AdSetID == "" {
		return ErrInvalidObjectID
	}
	if r.DailyBudget <= 0 {
		return ErrInvalidBudget
	}
	return nil
}

type CreateCampaignRequest struct {
	Name        string  `json:"name"`
	Objective   string  `json:"objective"`
	DailyBudget float64 `json:"dailyBudget,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// Validate confere os campos obrigatórios e aplica PAUSED como status padrão
func (r *CreateCampaignRequest) Validate() error {
	if r.Name == "" {
		return ErrInvalidCampaignName
	}
	if r.Objective == "" {
		return ErrInvalidObjective
	}
	if r.DailyBudget < 0 {
		return ErrInvalidBudget
	}
	if r.Status == "" {
		r.Status = StatusPaused
	}
	if r.Status != StatusActive && r.Status != StatusPaused {
		return ErrInvalidStatus
	}
	return nil
}

type MutationResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}
