// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cliniweb/internal/domain/entity"
	domainerrors "cliniweb/internal/domain/errors"
	"cliniweb/internal/domain/repository"
	"cliniweb/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the domain's CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
// It returns the repository as a repository.CredentialRepository interface, adhering to dependency inversion.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Insert persists a new credential record. A uniqueness violation on the
// identifier column is translated to the domain's conflict error; any other
// database failure surfaces as a generic execute error whose driver detail
// stays server-side.
func (repo *credentialRepository) Insert(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrIdentifierTaken.WrapMessage("identifier already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert credential")
	}

	// Propagate the generated ID and timestamps back to the entity.
	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// FindByIdentifier retrieves a single credential by its exact identifier.
// No normalization is applied; the match is byte-for-byte.
func (repo *credentialRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		First(&credentialM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by identifier")
	}

	return toCredentialDomain(&credentialM), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toCredentialDomain converts a GORM CredentialModel to a domain Credential entity.
func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:           data.ID,
		Identifier:   data.Identifier,
		PasswordHash: data.PasswordHash,
		Role:         data.Role,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromCredentialDomain converts a domain Credential entity to a GORM CredentialModel for persistence.
func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:           data.ID,
		Identifier:   data.Identifier,
		PasswordHash: data.PasswordHash,
		Role:         data.Role,
	}
}
