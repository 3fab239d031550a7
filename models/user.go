package models

import "time"

// User represents a freelancer account in Firestore
// @Description Freelancer account information
type User struct {
	ID        string    `json:"id" firestore:"-" example:"user@example.com"`
	Email     string    `json:"email" firestore:"email" example:"user@example.com"`
	Name      string    `json:"name" firestore:"name" example:"Jane Doe"`
	Password  string    `json:"-" firestore:"password"`                        // Hashed password, never sent to client
	Overview  string    `json:"overview,omitempty" firestore:"overview"`       // Freelancer bio used when drafting proposals
	Provider  string    `json:"provider" firestore:"provider" example:"email"` // "email" or "google"
	GoogleID  string    `json:"-" firestore:"googleId,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
