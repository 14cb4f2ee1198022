// Package auth implements the security core: bcrypt credential hashing and
// HS256 token issuance/validation.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Claims is the claim set carried by an access token: the registered claims
// (subject = account ID, issuer, audience, issued-at, expiry) plus the
// account's display name and email.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// IssueToken mints a signed HS256 token for the given account. The token is
// self-contained; the server keeps no session state for it.
func IssueToken(account *models.Account, secretKey []byte, issuer, audience string, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Name:  account.Name,
		Email: account.Email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken verifies signature, issuer, audience, and expiry, and
// returns the identity the token asserts. Every failure collapses into
// common.ErrorUnauthorized so callers cannot learn why a token was rejected.
func ValidateToken(tokenString string, secretKey []byte, issuer, audience string) (*models.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, common.ErrorUnauthorized
	}

	return &models.Identity{
		UserID: claims.Subject,
		Name:   claims.Name,
		Email:  claims.Email,
	}, nil
}
