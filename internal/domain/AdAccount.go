package domain

type AdAccount struct {
	ID           string `json:"id"`
	AccountID    string `json:"accountId"`
	Name         string `json:"name"`
	Currency     string `json:"currency,omitempty"`
	Status       int    `json:"status"`
	Timezone     string `json:"timezone,omitempty"`
	BusinessID   string `json:"businessId,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
}

type SelectAdAccountRequest struct {
	AdAccountID string `json:"adAccountId"`
}

type SelectAdAccountResponse struct {
	Success       bool   `json:"success"`
	AdAccountID   string `json:"adAccountId"`
	AdAccountName string `json:"adAccountName"`
}
