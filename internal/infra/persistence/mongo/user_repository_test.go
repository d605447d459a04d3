package mongo

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// newTestRepository connects to MONGO_TEST_URI and returns a repository on a
// throwaway database that is dropped when the test ends.
func newTestRepository(t *testing.T) *userRepository {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database(fmt.Sprint("authsvc_test_", time.Now().UnixNano()))
	t.Cleanup(func() {
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	repo := newUserRepository(db.Collection("users"))
	require.NoError(t, repo.EnsureIndexes(ctx))

	return repo
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := &entity.User{Name: "Ana", Email: "a@x.com", PasswordHash: "digest"}
	require.NoError(t, repo.Create(ctx, user))
	_, err := bson.ObjectIDFromHex(user.ID)
	assert.NoError(t, err)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Ana", found.Name)
	assert.Equal(t, "digest", found.PasswordHash)
}

func TestUserRepository_FindIsCaseSensitive(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "a@x.com", PasswordHash: "digest"}))

	_, err := repo.FindByEmail(ctx, "A@x.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "a@x.com", PasswordHash: "one"}))

	err := repo.Create(ctx, &entity.User{Email: "a@x.com", PasswordHash: "two"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))

	count, err := repo.users.CountDocuments(ctx, bson.D{{Key: "email", Value: "a@x.com"}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserRepository_ConcurrentCreatesKeepOneRecord(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Create(ctx, &entity.User{Email: "race@x.com", PasswordHash: "digest"}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	user, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}
