package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/cms-admin-backend/database/databasetest"
	"github.com/rpupo63/cms-admin-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPost(t *testing.T, db *gorm.DB, titl, tag, pstgYn, delYn string, inptDtm time.Time) models.BlogPost {
	t.Helper()
	post := models.BlogPost{
		BltnNo:  uuid.NewString(),
		Titl:    titl,
		Contt:   "<p>" + titl + "</p>",
		Tag:     tag,
		PstgYn:  pstgYn,
		DelYn:   delYn,
		InptDtm: inptDtm,
		UpdtDtm: inptDtm,
	}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func TestBlogPostSearch(t *testing.T) {
	db := databasetest.New(t)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	oldest := seedPost(t, db, "Go generics", "go,backend", models.FlagYes, models.FlagNo, base)
	middle := seedPost(t, db, "Release notes", "news", models.FlagNo, models.FlagNo, base.Add(time.Hour))
	newest := seedPost(t, db, "Go modules", "go", models.FlagYes, models.FlagNo, base.Add(2*time.Hour))
	seedPost(t, db, "Go deleted", "go", models.FlagYes, models.FlagYes, base.Add(3*time.Hour))

	repo := NewBlogPostRepo(db)
	ctx := context.Background()
	page := Page{Page: 1, Limit: 10}

	t.Run("newest first without deleted posts", func(t *testing.T) {
		result, err := repo.Search(ctx, BlogPostQuery{}, page)
		require.NoError(t, err)
		require.Len(t, result.Rows, 3)
		assert.Equal(t, int64(3), result.Total)
		assert.Equal(t, newest.BltnNo, result.Rows[0].BltnNo)
		assert.Equal(t, middle.BltnNo, result.Rows[1].BltnNo)
		assert.Equal(t, oldest.BltnNo, result.Rows[2].BltnNo)
	})

	t.Run("title substring", func(t *testing.T) {
		result, err := repo.Search(ctx, BlogPostQuery{Titl: "Go"}, page)
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Total)
	})

	t.Run("tag substring and publish flag", func(t *testing.T) {
		result, err := repo.Search(ctx, BlogPostQuery{Tag: "back", PstgYn: models.FlagYes}, page)
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, oldest.BltnNo, result.Rows[0].BltnNo)
	})

	t.Run("unpublished only", func(t *testing.T) {
		result, err := repo.Search(ctx, BlogPostQuery{PstgYn: models.FlagNo}, page)
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, middle.BltnNo, result.Rows[0].BltnNo)
	})
}

func TestBlogPostAdd(t *testing.T) {
	db := databasetest.New(t)
	repo := NewBlogPostRepo(db)

	post := models.BlogPost{BltnNo: "client-chosen", Titl: "Hello", Contt: "<p>Hi</p>", Tag: "a,b"}
	require.NoError(t, repo.Add(context.Background(), &post, "editor-1"))

	assert.NotEqual(t, "client-chosen", post.BltnNo)
	_, err := uuid.Parse(post.BltnNo)
	assert.NoError(t, err)
	assert.Equal(t, models.FlagNo, post.PstgYn)
	assert.Equal(t, models.FlagNo, post.DelYn)
	assert.Equal(t, "editor-1", post.InptUsrID)
	assert.Equal(t, "editor-1", post.UpdtUsrID)
	assert.False(t, post.InptDtm.IsZero())

	found, err := repo.FindByID(context.Background(), post.BltnNo)
	require.NoError(t, err)
	assert.Equal(t, "Hello", found.Titl)
	assert.Equal(t, []string{"a", "b"}, found.Tags())
}

func TestBlogPostUpdate(t *testing.T) {
	db := databasetest.New(t)
	repo := NewBlogPostRepo(db)
	ctx := context.Background()

	post := models.BlogPost{Titl: "Draft", Contt: "<p>v1</p>"}
	require.NoError(t, repo.Add(ctx, &post, "author"))

	require.NoError(t, repo.Update(ctx, &models.BlogPost{
		BltnNo: post.BltnNo,
		Titl:   "Final",
		Contt:  "<p>v2</p>",
		PstgYn: models.FlagYes,
	}, "editor"))

	found, err := repo.FindByID(ctx, post.BltnNo)
	require.NoError(t, err)
	assert.Equal(t, "Final", found.Titl)
	assert.Equal(t, "<p>v2</p>", found.Contt)
	assert.True(t, found.Published())
	assert.Equal(t, "author", found.InptUsrID)
	assert.Equal(t, "editor", found.UpdtUsrID)

	err = repo.Update(ctx, &models.BlogPost{BltnNo: "missing", Titl: "x", Contt: "y"}, "editor")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBlogPostDeleteIsSoft(t *testing.T) {
	db := databasetest.New(t)
	repo := NewBlogPostRepo(db)
	ctx := context.Background()

	post := models.BlogPost{Titl: "Gone soon", Contt: "<p>bye</p>"}
	require.NoError(t, repo.Add(ctx, &post, "author"))

	require.NoError(t, repo.Delete(ctx, post.BltnNo, "editor"))

	_, err := repo.FindByID(ctx, post.BltnNo)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var stored models.BlogPost
	require.NoError(t, db.Take(&stored, "bltn_no = ?", post.BltnNo).Error)
	assert.Equal(t, models.FlagYes, stored.DelYn)
	assert.Equal(t, "editor", stored.UpdtUsrID)

	assert.ErrorIs(t, repo.Delete(ctx, post.BltnNo, "editor"), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &models.BlogPost{BltnNo: post.BltnNo, Titl: "x", Contt: "y"}, "editor"), gorm.ErrRecordNotFound)
}
