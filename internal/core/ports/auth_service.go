package ports

import "context"

// TokenUser is the account view embedded in a token response.
type TokenUser struct {
	ID     string   `json:"id"`
	Email  string   `json:"email"`
	Claims []string `json:"claims,omitempty"`
}

// TokenResult is returned on successful registration or login. Claims are
// fixed at issuance time; they are not re-evaluated per request.
type TokenResult struct {
	AccessToken string    `json:"accessToken"`
	ExpiresIn   int64     `json:"expiresIn"`
	User        TokenUser `json:"user"`
}

// AuthService registers accounts and verifies credentials, minting signed
// bearer tokens on success.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*TokenResult, error)
	Login(ctx context.Context, email, password string) (*TokenResult, error)
}
