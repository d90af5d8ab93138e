package auth

import (
	"context"
	"errors"
	"testing"

	"castaway/internal/app/ports"
)

type fakeCredentialRepo struct {
	cred ports.GameCredentialRecord
	err  error
}

func (r fakeCredentialRepo) Create(context.Context, ports.GameCredentialRecord) error {
	return nil
}

func (r fakeCredentialRepo) GetByGameID(context.Context, string) (ports.GameCredentialRecord, error) {
	if r.err != nil {
		return ports.GameCredentialRecord{}, r.err
	}
	return r.cred, nil
}

func TestVerify_AcceptsMintedCredential(t *testing.T) {
	cred, err := NewCredential()
	if err != nil {
		t.Fatalf("NewCredential error: %v", err)
	}
	uc := VerifyUseCase{Credentials: fakeCredentialRepo{cred: ports.GameCredentialRecord{
		GameID:  "game-1",
		KeySalt: cred.Salt,
		KeyHash: cred.Hash,
		Status:  CredentialStatusActive,
	}}}

	if err := uc.Execute(context.Background(), VerifyRequest{GameID: "game-1", GameKey: cred.Key}); err != nil {
		t.Fatalf("expected minted key to verify, got %v", err)
	}
	if err := uc.Execute(context.Background(), VerifyRequest{GameID: "game-1", GameKey: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong key, got %v", err)
	}
}

func TestVerify_UnknownGameLooksLikeBadCredentials(t *testing.T) {
	uc := VerifyUseCase{Credentials: fakeCredentialRepo{err: ports.ErrNotFound}}
	err := uc.Execute(context.Background(), VerifyRequest{GameID: "nope", GameKey: "k"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerify_RejectsEmptyRequest(t *testing.T) {
	uc := VerifyUseCase{Credentials: fakeCredentialRepo{}}
	if err := uc.Execute(context.Background(), VerifyRequest{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
