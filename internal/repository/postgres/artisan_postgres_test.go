package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"craftapi/internal/model"
	"craftapi/internal/repository"
)

func TestArtisanPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewArtisanPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	a := &model.Artisan{
		ID:        "test-uuid",
		Name:      "Kamala Devi",
		CraftType: "block printing",
		Contact:   "+91 98765 43210",
		CreatedAt: now,
	}

	rows := sqlmock.NewRows([]string{"id", "name", "craft_type", "contact", "created_at"}).
		AddRow(a.ID, a.Name, a.CraftType, a.Contact, a.CreatedAt)

	mock.ExpectQuery("INSERT INTO artisans").
		WithArgs(a.ID, a.Name, a.CraftType, a.Contact, a.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, a)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, a.ID, result.ID)
	assert.Equal(t, a.CraftType, result.CraftType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtisanPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewArtisanPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "craft_type", "contact", "created_at"}).
			AddRow("test-id", "Kamala Devi", "block printing", "", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM artisans WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		a, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, a)
		assert.Equal(t, "test-id", a.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM artisans WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		a, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, a)
	})
}

func TestArtisanPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewArtisanPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM artisans").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows([]string{"id", "name", "craft_type", "contact", "created_at"}).
			AddRow("id-1", "Kamala Devi", "block printing", "", time.Now()).
			AddRow("id-2", "Ravi Kumar", "pottery", "", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM artisans ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Items, 2)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM artisans").
			WillReturnError(errors.New("db down"))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestArtisanPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewArtisanPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "craft_type", "contact", "created_at"}).
			AddRow("test-id", "Kamala Devi", "weaving", "kamala@example.com", time.Now())

		mock.ExpectQuery("UPDATE artisans").
			WithArgs("test-id", "Kamala Devi", "weaving", "kamala@example.com").
			WillReturnRows(rows)

		a, err := repo.Update(ctx, &model.Artisan{
			ID:        "test-id",
			Name:      "Kamala Devi",
			CraftType: "weaving",
			Contact:   "kamala@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "weaving", a.CraftType)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE artisans").
			WithArgs("missing", "x", "y", "").
			WillReturnError(sql.ErrNoRows)

		a, err := repo.Update(ctx, &model.Artisan{ID: "missing", Name: "x", CraftType: "y"})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, a)
	})
}
