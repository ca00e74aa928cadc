package dto

type GenerateReportRequestDTO struct {
	Prompt    string `json:"prompt" validate:"required"`
	MaxTokens int    `json:"max_tokens,omitempty" example:"4096"`
}

type GenerateReportResponseDTO struct {
	Text      string `json:"text"`
	ModelUsed string `json:"model_used" example:"claude-3-5-sonnet-20241022"`
}
