package sec

import (
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("sec: invalid token")

// Claims is the subset of a verified access token the gateway uses.
type Claims struct {
	Subject string
	Issuer  string
	KeyID   string
}

// Verifier checks RS256 bearer tokens against a set of public keys by kid.
type Verifier struct {
	keys     map[string]*rsa.PublicKey
	issuer   string
	audience string
	leeway   time.Duration
}

func NewVerifier(jwks *JWKS, issuer, audience string) (*Verifier, error) {
	v := &Verifier{
		keys:     make(map[string]*rsa.PublicKey, len(jwks.Keys)),
		issuer:   issuer,
		audience: audience,
		leeway:   30 * time.Second,
	}
	for _, jwk := range jwks.Keys {
		pub, err := jwk.ToPublicKey()
		if err != nil {
			return nil, fmt.Errorf("jwk %q: %w", jwk.Kid, err)
		}
		v.keys[jwk.Kid] = pub
	}
	if len(v.keys) == 0 {
		return nil, fmt.Errorf("%w: empty key set", ErrKeyNotFound)
	}
	return v, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (any, error) {
	kid, _ := token.Header["kid"].(string)
	pub, ok := v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("%w: kid %q", ErrKeyNotFound, kid)
	}
	return pub, nil
}

// Verify parses signedToken and checks signature, expiry, issuer and audience.
func (v *Verifier) Verify(signedToken string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(signedToken, &claims, v.keyFunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	kid, _ := token.Header["kid"].(string)
	return &Claims{Subject: claims.Subject, Issuer: claims.Issuer, KeyID: kid}, nil
}

// GenerateRSASignedJWT issues an RS256 access token for sub.
func GenerateRSASignedJWT(iss string, sub string, aud string, privateKey *rsa.PrivateKey, kid string, now time.Time, expDuration time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		Issuer:    iss,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expDuration)),
	}
	if aud != "" {
		claims.Audience = jwt.ClaimStrings{aud}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	return token.SignedString(privateKey)
}

func HashHexSHA256(data []byte) string {
	checksum := sha256.Sum256(data)
	return hex.EncodeToString(checksum[:])
}
