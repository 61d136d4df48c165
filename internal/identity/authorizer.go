package identity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/authorizerdev/authorizer-go"
)

// AuthorizerVerifier validates Authorizer session cookies with the
// authorizer-go SDK.
type AuthorizerVerifier struct {
	client *authorizer.AuthorizerClient
}

// NewAuthorizerVerifier creates the SDK client for an Authorizer instance.
func NewAuthorizerVerifier(clientID, authzURL, redirectURL string) (*AuthorizerVerifier, error) {
	client, err := authorizer.NewAuthorizerClient(clientID, authzURL, redirectURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer client: %w", err)
	}
	return &AuthorizerVerifier{client: client}, nil
}

// Verify validates a session cookie and maps the session user to an
// Identity. The SDK returns the user as a GraphQL projection, so the
// fields are read through a JSON round trip.
func (v *AuthorizerVerifier) Verify(_ context.Context, cookie string) (*Identity, error) {
	res, err := v.client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	raw, err := json.Marshal(res.User)
	if err != nil {
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}
	var user struct {
		ID         string  `json:"id"`
		Email      string  `json:"email"`
		GivenName  *string `json:"given_name"`
		FamilyName *string `json:"family_name"`
	}
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}

	ident := &Identity{
		ID:       user.ID,
		Email:    user.Email,
		Provider: "authorizer",
	}
	if user.GivenName != nil {
		ident.DisplayName = *user.GivenName
	}
	if user.FamilyName != nil {
		if ident.DisplayName != "" {
			ident.DisplayName += " "
		}
		ident.DisplayName += *user.FamilyName
	}

	return ident, nil
}
