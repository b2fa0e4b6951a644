package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/dbx"
	"github.com/dmitrijs2005/drivenpass/internal/server/auth"
	"github.com/dmitrijs2005/drivenpass/internal/server/config"
	"github.com/dmitrijs2005/drivenpass/internal/server/models"
	cardsrepo "github.com/dmitrijs2005/drivenpass/internal/server/repositories/cards"
	credentialsrepo "github.com/dmitrijs2005/drivenpass/internal/server/repositories/credentials"
	notesrepo "github.com/dmitrijs2005/drivenpass/internal/server/repositories/notes"
	usersrepo "github.com/dmitrijs2005/drivenpass/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	deleted []int64
	delErr  error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id int64) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCardsRepo struct {
	deletedFor []int64
	delErr     error
}

func (f *fakeCardsRepo) Create(context.Context, *models.Card) (*models.Card, error) {
	return nil, nil
}
func (f *fakeCardsRepo) GetByID(context.Context, int64) (*models.Card, error) { return nil, nil }
func (f *fakeCardsRepo) GetByUser(context.Context, int64) ([]*models.Card, error) {
	return nil, nil
}
func (f *fakeCardsRepo) FindByTitle(context.Context, int64, string) (*models.Card, error) {
	return nil, nil
}
func (f *fakeCardsRepo) Delete(context.Context, int64) error { return nil }
func (f *fakeCardsRepo) DeleteByUser(ctx context.Context, userID int64) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deletedFor = append(f.deletedFor, userID)
	return nil
}

type fakeCredentialsRepo struct {
	deletedFor []int64
}

func (f *fakeCredentialsRepo) Create(context.Context, *models.Credential) (*models.Credential, error) {
	return nil, nil
}
func (f *fakeCredentialsRepo) GetByID(context.Context, int64) (*models.Credential, error) {
	return nil, nil
}
func (f *fakeCredentialsRepo) GetByUser(context.Context, int64) ([]*models.Credential, error) {
	return nil, nil
}
func (f *fakeCredentialsRepo) FindByTitle(context.Context, int64, string) (*models.Credential, error) {
	return nil, nil
}
func (f *fakeCredentialsRepo) Delete(context.Context, int64) error { return nil }
func (f *fakeCredentialsRepo) DeleteByUser(ctx context.Context, userID int64) error {
	f.deletedFor = append(f.deletedFor, userID)
	return nil
}

type fakeNotesRepo struct {
	deletedFor []int64
}

func (f *fakeNotesRepo) Create(context.Context, *models.Note) (*models.Note, error) {
	return nil, nil
}
func (f *fakeNotesRepo) GetByID(context.Context, int64) (*models.Note, error) { return nil, nil }
func (f *fakeNotesRepo) GetByUser(context.Context, int64) ([]*models.Note, error) {
	return nil, nil
}
func (f *fakeNotesRepo) FindByTitle(context.Context, int64, string) (*models.Note, error) {
	return nil, nil
}
func (f *fakeNotesRepo) Delete(context.Context, int64) error { return nil }
func (f *fakeNotesRepo) DeleteByUser(ctx context.Context, userID int64) error {
	f.deletedFor = append(f.deletedFor, userID)
	return nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	c  *fakeCardsRepo
	cr *fakeCredentialsRepo
	n  *fakeNotesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Cards(db dbx.DBTX) cardsrepo.Repository       { return m.c }
func (m *fakeRepoManager) Credentials(db dbx.DBTX) credentialsrepo.Repository {
	return m.cr
}
func (m *fakeRepoManager) Notes(db dbx.DBTX) notesrepo.Repository { return m.n }

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewUserService(db, rm, cfg)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// --- tests ---

func TestUserService_Register(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	t.Run("creates user with hashed password", func(t *testing.T) {
		repo := &fakeUsersRepo{byEmailErr: common.ErrorNotFound}
		s := newUserService(t, db, &fakeRepoManager{u: repo})

		user, err := s.Register(context.Background(), "alice@example.com", "Str0ng!Pass")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEqual(t, "Str0ng!Pass", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Str0ng!Pass")))
	})

	t.Run("taken email is a conflict", func(t *testing.T) {
		repo := &fakeUsersRepo{byEmailOut: &models.User{ID: 1, Email: "alice@example.com"}}
		s := newUserService(t, db, &fakeRepoManager{u: repo})

		_, err := s.Register(context.Background(), "alice@example.com", "Str0ng!Pass")
		assert.ErrorIs(t, err, common.ErrorConflict)
	})

	t.Run("racing insert surfaces as conflict", func(t *testing.T) {
		repo := &fakeUsersRepo{byEmailErr: common.ErrorNotFound, createErr: common.ErrorConflict}
		s := newUserService(t, db, &fakeRepoManager{u: repo})

		_, err := s.Register(context.Background(), "alice@example.com", "Str0ng!Pass")
		assert.ErrorIs(t, err, common.ErrorConflict)
	})
}

func TestUserService_Login(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	stored := &models.User{ID: 42, Email: "alice@example.com", Password: hashPassword(t, "Str0ng!Pass")}

	t.Run("issues a parseable token", func(t *testing.T) {
		repo := &fakeUsersRepo{byEmailOut: stored}
		s := newUserService(t, db, &fakeRepoManager{u: repo})

		token, err := s.Login(context.Background(), "alice@example.com", "Str0ng!Pass")
		require.NoError(t, err)

		claims, err := auth.ParseToken(token, []byte("k"))
		require.NoError(t, err)
		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.Equal(t, "alice@example.com", claims.Email)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		repo := &fakeUsersRepo{byEmailOut: stored}
		s := newUserService(t, db, &fakeRepoManager{u: repo})

		_, err := s.Login(context.Background(), "alice@example.com", "nope")
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		repo := &fakeUsersRepo{byEmailErr: common.ErrorNotFound}
		s := newUserService(t, db, &fakeRepoManager{u: repo})

		_, err := s.Login(context.Background(), "nobody@example.com", "Str0ng!Pass")
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})
}
