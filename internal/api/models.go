package api

import (
	"time"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/domain"
	"github.com/mayconaraujosantos/alertasaude-sub001/internal/service"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID int64 `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`
}

// CreateMedicineRequest defines the payload for creating a medicine.
type CreateMedicineRequest struct {
	Name        string `json:"name"        validate:"required"`
	Dosage      string `json:"dosage"      validate:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"    validate:"gte=0"`
	Unit        string `json:"unit"`
	Form        string `json:"form"`
	ImageURL    string `json:"image_url"`
}

// UpdateMedicineRequest defines the payload for updating a medicine.
// It carries the full replacement attribute set.
type UpdateMedicineRequest = CreateMedicineRequest

// Attributes converts the request into domain medicine attributes.
func (r *CreateMedicineRequest) Attributes() domain.MedicineAttributes {
	return domain.MedicineAttributes{
		Name:        r.Name,
		Dosage:      r.Dosage,
		Description: r.Description,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		Form:        r.Form,
		ImageURL:    r.ImageURL,
	}
}

// CreateScheduleRequest defines the payload for creating a treatment schedule.
type CreateScheduleRequest struct {
	MedicineID    int64  `json:"medicine_id"    validate:"required,gt=0"`
	IntervalHours int    `json:"interval_hours" validate:"required,gt=0"`
	DurationDays  int    `json:"duration_days"  validate:"required,gt=0"`
	StartTime     string `json:"start_time"     validate:"required"`
	Notes         string `json:"notes"`
}

// Params converts the request into schedule creation parameters.
func (r *CreateScheduleRequest) Params() service.CreateScheduleParams {
	return service.CreateScheduleParams{
		MedicineID:    r.MedicineID,
		IntervalHours: r.IntervalHours,
		DurationDays:  r.DurationDays,
		StartTime:     r.StartTime,
		Notes:         r.Notes,
	}
}

// SetScheduleActiveRequest defines the payload for toggling a schedule.
type SetScheduleActiveRequest struct {
	Active bool `json:"active"`
}

// ScheduleResponse defines the representation of a schedule, including the
// number of reminders generated per day of treatment.
type ScheduleResponse struct {
	ID             int64     `json:"id"`
	MedicineID     int64     `json:"medicine_id"`
	IntervalHours  int       `json:"interval_hours"`
	DurationDays   int       `json:"duration_days"`
	StartTime      string    `json:"start_time"`
	Notes          string    `json:"notes,omitempty"`
	Active         bool      `json:"active"`
	DailyDoseCount int       `json:"daily_dose_count"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewScheduleResponse builds a ScheduleResponse from a domain schedule.
func NewScheduleResponse(s *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:             s.ID,
		MedicineID:     s.MedicineID,
		IntervalHours:  s.IntervalHours,
		DurationDays:   s.DurationDays,
		StartTime:      s.StartTime,
		Notes:          s.Notes,
		Active:         s.Active,
		DailyDoseCount: s.DailyDoseCount(),
		ExpiresAt:      s.ExpiresAt(),
		CreatedAt:      s.CreatedAt,
	}
}

// NewScheduleResponses builds responses for a slice of schedules.
func NewScheduleResponses(schedules []*domain.Schedule) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, NewScheduleResponse(s))
	}
	return out
}

// MarkDoseTakenRequest defines the optional payload for marking a dose taken.
// When TakenAt is absent the server's current time is used.
type MarkDoseTakenRequest struct {
	TakenAt *time.Time `json:"taken_at"`
}

// MedicineResponse defines the representation of a medicine.
type MedicineResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Dosage      string    `json:"dosage"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Form        string    `json:"form,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewMedicineResponse builds a MedicineResponse from a domain medicine.
func NewMedicineResponse(m *domain.Medicine) MedicineResponse {
	return MedicineResponse{
		ID:          m.ID,
		Name:        m.Name,
		Dosage:      m.Dosage,
		Description: m.Description,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		Form:        m.Form,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
	}
}

// NewMedicineResponses builds responses for a slice of medicines.
func NewMedicineResponses(medicines []*domain.Medicine) []MedicineResponse {
	out := make([]MedicineResponse, 0, len(medicines))
	for _, m := range medicines {
		out = append(out, NewMedicineResponse(m))
	}
	return out
}

// DoseReminderResponse defines the representation of a dose reminder.
type DoseReminderResponse struct {
	ID          int64      `json:"id"`
	ScheduleID  int64      `json:"schedule_id"`
	MedicineID  int64      `json:"medicine_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Taken       bool       `json:"taken"`
	Skipped     bool       `json:"skipped"`
	TakenAt     *time.Time `json:"taken_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewDoseReminderResponse builds a DoseReminderResponse from a domain reminder.
func NewDoseReminderResponse(r *domain.DoseReminder) DoseReminderResponse {
	return DoseReminderResponse{
		ID:          r.ID,
		ScheduleID:  r.ScheduleID,
		MedicineID:  r.MedicineID,
		ScheduledAt: r.ScheduledAt,
		Taken:       r.Taken,
		Skipped:     r.Skipped,
		TakenAt:     r.TakenAt,
		CreatedAt:   r.CreatedAt,
	}
}

// NewDoseReminderResponses builds responses for a slice of reminders.
func NewDoseReminderResponses(reminders []*domain.DoseReminder) []DoseReminderResponse {
	out := make([]DoseReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, NewDoseReminderResponse(r))
	}
	return out
}
