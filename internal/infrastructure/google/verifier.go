package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-jose/go-jose/v3"

	"artist-hub.backend/internal/domain/repositories"
)

const defaultJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

var (
	ErrInvalidIDToken = errors.New("invalid google id token")

	acceptedIssuers = []string{"accounts.google.com", "https://accounts.google.com"}
)

// Verifier validates Google-issued ID tokens against the application's
// registered OAuth client id.
type Verifier struct {
	clientID   string
	jwksURL    string
	httpClient *http.Client

	mu        sync.Mutex
	keys      *jose.JSONWebKeySet
	fetchedAt time.Time
}

// NewVerifier creates a new ID-token verifier for the given client id
func NewVerifier(clientID string) *Verifier {
	return &Verifier{
		clientID:   clientID,
		jwksURL:    defaultJWKSURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewVerifierWithJWKS creates a verifier backed by a custom JWKS endpoint
// (used in tests)
func NewVerifierWithJWKS(clientID, jwksURL string) *Verifier {
	v := NewVerifier(clientID)
	v.jwksURL = jwksURL
	return v
}

type idTokenClaims struct {
	Issuer   string `json:"iss"`
	Audience string `json:"aud"`
	Subject  string `json:"sub"`
	Email    string `json:"email"`
	Expiry   int64  `json:"exp"`
}

// Verify checks the token's signature against Google's published keys and
// validates issuer, audience and expiry. Returns the verified email and
// provider-side subject id.
func (v *Verifier) Verify(ctx context.Context, idToken string) (*repositories.GoogleIdentity, error) {
	sig, err := jose.ParseSigned(idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}
	if len(sig.Signatures) == 0 {
		return nil, ErrInvalidIDToken
	}

	keys, err := v.jwks(ctx)
	if err != nil {
		return nil, err
	}

	kid := sig.Signatures[0].Header.KeyID
	var payload []byte
	for _, key := range keys.Key(kid) {
		if payload, err = sig.Verify(key); err == nil {
			break
		}
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: signature verification failed", ErrInvalidIDToken)
	}

	var claims idTokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}

	if !issuerAccepted(claims.Issuer) {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidIDToken, claims.Issuer)
	}
	if claims.Audience != v.clientID {
		return nil, fmt.Errorf("%w: audience mismatch", ErrInvalidIDToken)
	}
	if time.Unix(claims.Expiry, 0).Before(time.Now()) {
		return nil, fmt.Errorf("%w: token expired", ErrInvalidIDToken)
	}
	if claims.Email == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing email or subject", ErrInvalidIDToken)
	}

	return &repositories.GoogleIdentity{
		Email:   claims.Email,
		Subject: claims.Subject,
	}, nil
}

// jwks returns Google's signing keys, cached for an hour
func (v *Verifier) jwks(ctx context.Context) (*jose.JSONWebKeySet, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.keys != nil && time.Since(v.fetchedAt) < time.Hour {
		return v.keys, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch google jwks: status %d", resp.StatusCode)
	}

	var keys jose.JSONWebKeySet
	if err := json.NewDecoder(resp.Body).Decode(&keys); err != nil {
		return nil, fmt.Errorf("failed to decode google jwks: %w", err)
	}

	v.keys = &keys
	v.fetchedAt = time.Now()
	return v.keys, nil
}

func issuerAccepted(iss string) bool {
	for _, accepted := range acceptedIssuers {
		if iss == accepted {
			return true
		}
	}
	return false
}
