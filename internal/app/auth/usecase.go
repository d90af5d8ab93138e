package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"castaway/internal/app/ports"
)

const CredentialStatusActive = "active"

var (
	ErrInvalidRequest     = errors.New("invalid auth request")
	ErrInvalidCredentials = errors.New("invalid game credentials")
)

// Credential is a freshly minted game key with its stored form.
type Credential struct {
	Key  string
	Salt []byte
	Hash []byte
}

// NewCredential mints the secret key returned to the client at game
// creation, plus the salted hash that is the only thing persisted.
func NewCredential() (Credential, error) {
	keyBytes, err := randomBytes(32)
	if err != nil {
		return Credential{}, err
	}
	salt, err := randomBytes(16)
	if err != nil {
		return Credential{}, err
	}
	key := base64.RawURLEncoding.EncodeToString(keyBytes)
	return Credential{Key: key, Salt: salt, Hash: credentialHash(salt, key)}, nil
}

type VerifyRequest struct {
	GameID  string
	GameKey string
}

type VerifyUseCase struct {
	Credentials ports.GameCredentialRepository
}

func (u VerifyUseCase) Execute(ctx context.Context, req VerifyRequest) error {
	req.GameID = strings.TrimSpace(req.GameID)
	req.GameKey = strings.TrimSpace(req.GameKey)
	if req.GameID == "" || req.GameKey == "" || u.Credentials == nil {
		return ErrInvalidRequest
	}

	cred, err := u.Credentials.GetByGameID(ctx, req.GameID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if cred.Status != CredentialStatusActive {
		return ErrInvalidCredentials
	}
	got := credentialHash(cred.KeySalt, req.GameKey)
	if subtle.ConstantTimeCompare(got, cred.KeyHash) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

func credentialHash(salt []byte, key string) []byte {
	b := make([]byte, 0, len(salt)+len(key))
	b = append(b, salt...)
	b = append(b, key...)
	sum := sha256.Sum256(b)
	return sum[:]
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
