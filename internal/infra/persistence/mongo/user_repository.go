package mongo

import (
	"context"
	"log/slog"
	"time"

	"authsvc/config"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/lifecycle"
	"authsvc/internal/domain/repository"
	"authsvc/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

const emailIndexName = "email_unique"

// userRepository implements repository.UserRepository on a MongoDB collection.
type userRepository struct {
	users *mongo.Collection
	now   func() time.Time
}

// UserRepositoryParams holds dependencies for the repository, injected by Fx.
type UserRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Client *mongo.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewUserRepository builds the repository and registers a start hook that
// creates the unique email index, which is what rejects duplicate emails.
func NewUserRepository(params UserRepositoryParams) repository.UserRepository {
	cfg := params.Config.Mongo
	repo := newUserRepository(params.Client.Database(cfg.Database).Collection(cfg.Collection))

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := repo.EnsureIndexes(ctx); err != nil {
				return err
			}
			params.Logger.Debug("MongoDB user indexes ready", slog.String("collection", cfg.Collection))

			return nil
		},
	})

	return repo
}

func newUserRepository(users *mongo.Collection) *userRepository {
	return &userRepository{
		users: users,
		now:   time.Now,
	}
}

// EnsureIndexes creates the unique index on email. It is idempotent.
func (repo *userRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailIndexName),
	})

	return errors.Wrap(err, "failed to create email index")
}

// FindByEmail retrieves a single user by email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDocument

	err := repo.users.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&doc), nil
}

// Create inserts a new user. The unique email index decides duplicates.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = repo.now().UTC()
	}
	doc := fromUserDomain(user)

	result, err := repo.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
		}

		return errors.Wrap(err, "failed to insert user")
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return errors.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	user.ID = id.Hex()

	return nil
}
