package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aqarpress/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// The in-memory database lives in a single connection; a second pooled
	// connection would see an empty schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.ContentSection{},
		&models.TableOfContent{},
		&models.FaqItem{},
		&models.RelatedPost{},
	))
	return db
}

func newPostRepo(t *testing.T) (*GormPostRepository, *gorm.DB) {
	db := newTestDB(t)
	return NewPostRepository(db, zap.NewNop()), db
}

func fullPostRequest() *models.CreatePostRequest {
	return &models.CreatePostRequest{
		Slug:      "luxury-villas-riyadh",
		TitleAr:   "فلل فاخرة في الرياض",
		TitleEn:   "Luxury Villas in Riyadh",
		SummaryAr: "ملخص",
		Status:    models.PostStatusPublished,
		Ar: models.LanguageContent{
			ContentSections: []models.SectionRequest{
				{SectionOrder: 1, Heading: "مقدمة", Body: "نص المقدمة"},
				{SectionOrder: 2, Heading: "التفاصيل", Body: "نص التفاصيل"},
			},
			Categories: []models.CategoryRequest{{Slug: "villas", Name: "فلل"}},
			Tags:       []models.TagRequest{{Slug: "riyadh", Name: "الرياض"}},
			TableOfContents: []models.TocRequest{
				{TocOrder: 1, Heading: "مقدمة"},
				{TocOrder: 2, Heading: "التفاصيل"},
			},
			FaqItems: []models.FaqRequest{
				{FaqOrder: 1, Question: "سؤال", Answer: "جواب"},
				{FaqOrder: 2, Question: "سؤال ثاني", Answer: "جواب ثاني", SectionOrder: 2},
			},
			RelatedPosts: []models.RelatedPostRequest{
				{RelevanceOrder: 1, Title: "مقال ذو صلة", Slug: "market-outlook"},
			},
		},
		En: models.LanguageContent{
			ContentSections: []models.SectionRequest{
				{SectionOrder: 1, Heading: "Introduction", Body: "Intro body"},
			},
			Categories: []models.CategoryRequest{{Slug: "villas", Name: "Villas"}},
			Tags:       []models.TagRequest{{Slug: "luxury", Name: "Luxury"}},
			RelatedPosts: []models.RelatedPostRequest{
				{RelevanceOrder: 1, Title: "Related article", Slug: "market-outlook"},
			},
		},
	}
}

func TestCreatePostFullGraph(t *testing.T) {
	repo, db := newPostRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, fullPostRequest(), 7)
	require.NoError(t, err)
	require.NotZero(t, id)

	post, err := repo.GetBySlug(ctx, "luxury-villas-riyadh")
	require.NoError(t, err)
	assert.Equal(t, uint(7), post.AuthorID)
	assert.Equal(t, models.PostStatusPublished, post.Status)
	require.NotNil(t, post.SummaryAr)
	assert.Nil(t, post.SummaryEn)

	// Two section orders, the first bilingual and the second Arabic only.
	require.Len(t, post.ContentSections, 2)
	first, second := post.ContentSections[0], post.ContentSections[1]
	assert.Equal(t, "مقدمة", *first.HeadingAr)
	assert.Equal(t, "Introduction", *first.HeadingEn)
	assert.Equal(t, "التفاصيل", *second.HeadingAr)
	assert.Nil(t, second.HeadingEn)

	// FAQ 1 has no reference and lands on the first section, FAQ 2 names
	// section order 2 explicitly.
	require.Len(t, first.FaqItems, 1)
	require.Len(t, second.FaqItems, 1)
	assert.Equal(t, 1, first.FaqItems[0].FaqOrder)
	assert.Equal(t, 2, second.FaqItems[0].FaqOrder)

	// One category row with both language names, no duplicate for the
	// shared slug.
	require.Len(t, post.Categories, 1)
	assert.Equal(t, "villas", post.Categories[0].Slug)
	assert.Equal(t, "فلل", *post.Categories[0].NameAr)
	assert.Equal(t, "Villas", *post.Categories[0].NameEn)

	require.Len(t, post.Tags, 2)
	require.Len(t, post.TableOfContents, 2)

	require.Len(t, post.RelatedPosts, 1)
	assert.Equal(t, "market-outlook", post.RelatedPosts[0].RelatedPostSlug)
	assert.Equal(t, "مقال ذو صلة", *post.RelatedPosts[0].RelatedPostTitleAr)
	assert.Equal(t, "Related article", *post.RelatedPosts[0].RelatedPostTitleEn)

	var categoryCount int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categoryCount).Error)
	assert.Equal(t, int64(1), categoryCount)
}

func TestCreatePostCategoryUpsertAcrossPosts(t *testing.T) {
	repo, db := newPostRepo(t)
	ctx := context.Background()

	first := &models.CreatePostRequest{
		Slug: "first-post", TitleAr: "الأول", TitleEn: "First",
		Ar: models.LanguageContent{
			Categories: []models.CategoryRequest{{Slug: "villas", Name: "فلل"}},
		},
	}
	_, err := repo.Create(ctx, first, 1)
	require.NoError(t, err)

	// The second post adds the missing English name to the same category.
	second := &models.CreatePostRequest{
		Slug: "second-post", TitleAr: "الثاني", TitleEn: "Second",
		En: models.LanguageContent{
			Categories: []models.CategoryRequest{{Slug: "villas", Name: "Villas"}},
		},
	}
	_, err = repo.Create(ctx, second, 1)
	require.NoError(t, err)

	var category models.Category
	require.NoError(t, db.Where("slug = ?", "villas").First(&category).Error)
	require.NotNil(t, category.NameAr)
	require.NotNil(t, category.NameEn)
	assert.Equal(t, "فلل", *category.NameAr)
	assert.Equal(t, "Villas", *category.NameEn)

	var categoryCount int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categoryCount).Error)
	assert.Equal(t, int64(1), categoryCount)
}

func TestCreatePostDuplicateSlug(t *testing.T) {
	repo, _ := newPostRepo(t)
	ctx := context.Background()

	req := &models.CreatePostRequest{Slug: "unique-slug", TitleAr: "عنوان", TitleEn: "Title"}
	_, err := repo.Create(ctx, req, 1)
	require.NoError(t, err)

	_, err = repo.Create(ctx, req, 1)
	require.ErrorIs(t, err, ErrDuplicateSlug)

	// The first post survives the failed second insert untouched.
	post, err := repo.GetBySlug(ctx, "unique-slug")
	require.NoError(t, err)
	assert.Equal(t, "Title", post.TitleEn)
}

func TestCreatePostRollsBackOnDanglingFaqReference(t *testing.T) {
	repo, db := newPostRepo(t)
	ctx := context.Background()

	req := &models.CreatePostRequest{
		Slug: "broken-post", TitleAr: "عنوان", TitleEn: "Title",
		En: models.LanguageContent{
			ContentSections: []models.SectionRequest{{SectionOrder: 1, Body: "body"}},
			Categories:      []models.CategoryRequest{{Slug: "guides", Name: "Guides"}},
			FaqItems: []models.FaqRequest{
				{FaqOrder: 1, Question: "Q", Answer: "A", SectionOrder: 99},
			},
		},
	}
	_, err := repo.Create(ctx, req, 1)
	require.Error(t, err)
	require.ErrorContains(t, err, "unknown section order")

	// Nothing of the graph survives, including the category upserted before
	// the failure.
	for _, count := range []struct {
		name  string
		model interface{}
	}{
		{"posts", &models.Post{}},
		{"content_sections", &models.ContentSection{}},
		{"categories", &models.Category{}},
		{"faq_items", &models.FaqItem{}},
	} {
		var n int64
		require.NoError(t, db.Model(count.model).Count(&n).Error)
		assert.Zero(t, n, "table %s not rolled back", count.name)
	}
}

func TestCreatePostFaqWithoutSections(t *testing.T) {
	repo, _ := newPostRepo(t)

	req := &models.CreatePostRequest{
		Slug: "faq-only", TitleAr: "عنوان", TitleEn: "Title",
		En: models.LanguageContent{
			FaqItems: []models.FaqRequest{{FaqOrder: 1, Question: "Q", Answer: "A"}},
		},
	}
	_, err := repo.Create(context.Background(), req, 1)
	require.Error(t, err)
	require.ErrorContains(t, err, "at least one content section")
}

func TestGetBySlugNotFound(t *testing.T) {
	repo, _ := newPostRepo(t)

	_, err := repo.GetBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltersByStatus(t *testing.T) {
	repo, _ := newPostRepo(t)
	ctx := context.Background()

	for _, p := range []struct{ slug, status string }{
		{"draft-one", models.PostStatusDraft},
		{"published-one", models.PostStatusPublished},
		{"published-two", models.PostStatusPublished},
	} {
		_, err := repo.Create(ctx, &models.CreatePostRequest{
			Slug: p.slug, TitleAr: "عنوان", TitleEn: "Title", Status: p.status,
		}, 1)
		require.NoError(t, err)
	}

	published, total, err := repo.List(ctx, models.PostStatusPublished, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, published, 2)

	all, total, err := repo.List(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
}

func TestDeleteNotFound(t *testing.T) {
	repo, _ := newPostRepo(t)
	require.ErrorIs(t, repo.Delete(context.Background(), 12345), ErrNotFound)
}

func TestPublishDue(t *testing.T) {
	repo, _ := newPostRepo(t)
	ctx := context.Background()
	now := time.Now()

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	_, err := repo.Create(ctx, &models.CreatePostRequest{
		Slug: "due-post", TitleAr: "عنوان", TitleEn: "Due", PublishAt: &past,
	}, 1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.CreatePostRequest{
		Slug: "future-post", TitleAr: "عنوان", TitleEn: "Future", PublishAt: &future,
	}, 1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.CreatePostRequest{
		Slug: "manual-post", TitleAr: "عنوان", TitleEn: "Manual",
	}, 1)
	require.NoError(t, err)

	published, err := repo.PublishDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "due-post", published[0].Slug)
	assert.Equal(t, models.PostStatusPublished, published[0].Status)

	due, err := repo.GetBySlug(ctx, "due-post")
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, due.Status)

	future1, err := repo.GetBySlug(ctx, "future-post")
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusDraft, future1.Status)
}
