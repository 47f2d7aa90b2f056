package postgres

import (
	"context"

	"gorm.io/gorm"

	"autolot/internal/domain/entity"
	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/domain/repository"
	"autolot/internal/errors"
	"autolot/internal/infra/persistence/model"
)

type userRepository struct {
	*gormRepository[entity.User, model.UserModel]
}

// NewUserRepository creates a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		gormRepository: newGormRepository(db, repoConfig[entity.User, model.UserModel]{
			table:   "users",
			columns: userColumns,
			relations: map[string]relationJoin{
				"store": {
					table:   "stores",
					joinSQL: "JOIN stores ON stores.id = users.store_id",
					columns: storeColumns,
				},
			},
			preloads: []string{"Store"},
			// The credential hash is written at registration and never
			// through the generic full-replace update.
			updateOmit: []string{"hashed_password"},
			toModel:    toUserModel,
			toEntity:   toUserEntity,
			modelID:    func(m *model.UserModel) int64 { return m.ID },
		}),
	}
}

// FindByEmail retrieves a single user by email, or (nil, nil) when absent.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByUsername retrieves a single user by username, or (nil, nil) when absent.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *userRepository) findOne(ctx context.Context, cond string, value string) (*entity.User, error) {
	var m model.UserModel

	err := r.db.WithContext(ctx).Preload("Store").Where(cond, value).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewPersistenceError(err, "select from users")
	}

	return toUserEntity(&m), nil
}
