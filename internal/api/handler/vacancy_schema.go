package handler

import "time"

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// vacancyRequest is the write payload for create and full-record replace.
// The id is optional on create (the service generates one). IsOpen is a
// pointer so an omitted value can default to true rather than false.
// MinSalary and MaxSalary carry no constraints, and nothing relates the two.
type vacancyRequest struct {
	ID          string     `json:"id" validate:"omitempty,uuid"`
	Title       string     `json:"title" validate:"required,max=240"`
	Description string     `json:"description" validate:"required,max=1024"`
	Company     string     `json:"company" validate:"required,max=120"`
	IsOpen      *bool      `json:"isOpen"`
	MinSalary   float64    `json:"minSalary"`
	MaxSalary   float64    `json:"maxSalary"`
	CreatedAt   *time.Time `json:"createdAt"`
}

// vacancyResponse is the read view. Owned by the transport layer so the JSON
// contract is not coupled to internal domain changes.
type vacancyResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	IsOpen      bool      `json:"isOpen"`
	MinSalary   float64   `json:"minSalary"`
	MaxSalary   float64   `json:"maxSalary"`
	CreatedAt   time.Time `json:"createdAt"`
}

// --- Auth payloads ---

type registerRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
