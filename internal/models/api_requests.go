package models

type ScoutRequest struct {
	TeamAID        string `json:"team_a_id" validate:"required"`
	TeamBID        string `json:"team_b_id" validate:"required,nefield=TeamAID"`
	TimeWindowDays int    `json:"time_window_days" validate:"omitempty,min=1,max=365"`
}

type TeamResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Region    string `json:"region,omitempty"`
}

type ScoutResponse struct {
	Success     bool    `json:"success"`
	ReportID    string  `json:"report_id"`
	GeneratedAt string  `json:"generated_at"` // ISO8601
	DataSource  string  `json:"data_source"`
	Report      *Report `json:"report"`
	Insights    string  `json:"insights,omitempty"`
}
