package model

import "time"

// ContactSubmission is a contact form entry accepted and stored by the site.
// Submissions are created once and never updated.
type ContactSubmission struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone" db:"phone"`
	Budget      string    `json:"budget" db:"budget"`
	Area        string    `json:"area" db:"area"`
	Message     string    `json:"message" db:"message"`
	SubmittedAt time.Time `json:"submittedAt" db:"-"`
}

// ContactSubmissionInput carries the validated form fields for a new submission.
type ContactSubmissionInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Budget  string `json:"budget" validate:"required"`
	Area    string `json:"area" validate:"required"`
	Message string `json:"message" validate:"required,max=5000"`
}
