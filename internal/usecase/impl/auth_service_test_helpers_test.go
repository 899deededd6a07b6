package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"cliniweb/internal/domain/entity"
	domainerrors "cliniweb/internal/domain/errors"
	"cliniweb/internal/domain/repository"
	"cliniweb/internal/infra/auth"
	"cliniweb/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCredentialRepo is an in-memory CredentialRepository that enforces
// identifier uniqueness the way the real store's constraint does. It counts
// calls so tests can assert that invalid input never reaches the store.
type fakeCredentialRepo struct {
	mu          sync.Mutex
	byID        map[string]*entity.Credential
	insertCalls int
	findCalls   int
	insertErr   error
	findErr     error
}

func newFakeCredentialRepo() *fakeCredentialRepo {
	return &fakeCredentialRepo{byID: make(map[string]*entity.Credential)}
}

func (f *fakeCredentialRepo) Insert(_ context.Context, credential *entity.Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.insertCalls++
	if f.insertErr != nil {
		return f.insertErr
	}

	if _, exists := f.byID[credential.Identifier]; exists {
		return domainerrors.ErrIdentifierTaken.WrapMessage("identifier already registered")
	}

	credential.ID = uuid.New()
	stored := *credential
	f.byID[credential.Identifier] = &stored

	return nil
}

func (f *fakeCredentialRepo) FindByIdentifier(_ context.Context, identifier string) (*entity.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}

	stored, exists := f.byID[identifier]
	if !exists {
		return nil, repository.ErrCredentialNotFound
	}

	found := *stored

	return &found, nil
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service usecase.AuthUsecase
	repo    *fakeCredentialRepo
}

func createTestAuthService() authServiceFixtures {
	repo := newFakeCredentialRepo()
	// MinCost keeps the real bcrypt path fast enough for unit tests.
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	service := NewAuthService(AuthServiceParams{
		CredentialRepo: repo,
		Hasher:         hasher,
		Logger:         newDiscardLogger(),
	})

	return authServiceFixtures{
		service: service,
		repo:    repo,
	}
}
