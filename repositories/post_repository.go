package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aqarpress/models"
)

// GormPostRepository persists the bilingual post graph. Create is the
// transactional writer: the whole nine-table graph commits or rolls back as
// a unit, so no partially created post is ever observable.
type GormPostRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPostRepository(db *gorm.DB, log *zap.Logger) *GormPostRepository {
	return &GormPostRepository{db: db, log: log}
}

// Create merges the request's two language trees and inserts the canonical
// rows in dependency order inside one transaction. gorm.Transaction rolls
// back and releases the connection on every error path.
func (r *GormPostRepository) Create(ctx context.Context, req *models.CreatePostRequest, authorID uint) (uint, error) {
	var postID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post := models.Post{
			Slug:             req.Slug,
			TitleAr:          req.TitleAr,
			TitleEn:          req.TitleEn,
			SummaryAr:        nullable(req.SummaryAr),
			SummaryEn:        nullable(req.SummaryEn),
			FeaturedImageURL: nullable(req.FeaturedImageURL),
			Status:           req.Status,
			PublishAt:        req.PublishAt,
			AuthorID:         authorID,
		}
		if post.Status == "" {
			post.Status = models.PostStatusDraft
		}
		if err := tx.Create(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("post slug %q: %w", req.Slug, ErrDuplicateSlug)
			}
			return fmt.Errorf("inserting post: %w", err)
		}
		if post.ID == 0 {
			return fmt.Errorf("inserting post %q: no id returned", req.Slug)
		}
		postID = post.ID

		sectionIDByOrder, firstSectionID, err := r.insertContentSections(tx, post.ID, req)
		if err != nil {
			return err
		}
		if err := r.insertTaxonomies(tx, post.ID, req); err != nil {
			return err
		}
		if err := r.insertTableOfContents(tx, post.ID, req); err != nil {
			return err
		}
		if err := r.insertFaqItems(tx, post.ID, req, sectionIDByOrder, firstSectionID); err != nil {
			return err
		}
		return r.insertRelatedPosts(tx, post.ID, req)
	})
	if err != nil {
		return 0, err
	}

	r.log.Info("post graph committed", zap.Uint("post_id", postID), zap.String("slug", req.Slug))
	return postID, nil
}

func (r *GormPostRepository) insertContentSections(tx *gorm.DB, postID uint, req *models.CreatePostRequest) (map[int]uint, uint, error) {
	sections := models.MergeContentSections(req.Ar.ContentSections, req.En.ContentSections)
	if len(sections) == 0 {
		return nil, 0, nil
	}
	for i := range sections {
		sections[i].PostID = postID
	}
	if err := tx.Create(&sections).Error; err != nil {
		return nil, 0, fmt.Errorf("post %d: inserting content sections: %w", postID, err)
	}

	idByOrder := make(map[int]uint, len(sections))
	for _, section := range sections {
		idByOrder[section.SectionOrder] = section.ID
	}
	return idByOrder, sections[0].ID, nil
}

func (r *GormPostRepository) insertTaxonomies(tx *gorm.DB, postID uint, req *models.CreatePostRequest) error {
	for _, category := range models.MergeCategories(req.Ar.Categories, req.En.Categories) {
		if err := r.upsertCategory(tx, &category); err != nil {
			return fmt.Errorf("post %d: upserting category %q: %w", postID, category.Slug, err)
		}
		join := models.PostCategory{PostID: postID, CategoryID: category.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&join).Error; err != nil {
			return fmt.Errorf("post %d: linking category %q: %w", postID, category.Slug, err)
		}
	}

	for _, tag := range models.MergeTags(req.Ar.Tags, req.En.Tags) {
		if err := r.upsertTag(tx, &tag); err != nil {
			return fmt.Errorf("post %d: upserting tag %q: %w", postID, tag.Slug, err)
		}
		join := models.PostTag{PostID: postID, TagID: tag.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&join).Error; err != nil {
			return fmt.Errorf("post %d: linking tag %q: %w", postID, tag.Slug, err)
		}
	}
	return nil
}

// upsertCategory inserts the category or merges it into the existing row
// with the same slug. COALESCE keeps any language column that the request
// did not supply, so a later post can add the missing language without
// wiping the one already stored.
func (r *GormPostRepository) upsertCategory(tx *gorm.DB, category *models.Category) error {
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name_ar":        gorm.Expr("COALESCE(excluded.name_ar, categories.name_ar)"),
			"name_en":        gorm.Expr("COALESCE(excluded.name_en, categories.name_en)"),
			"description_ar": gorm.Expr("COALESCE(excluded.description_ar, categories.description_ar)"),
			"description_en": gorm.Expr("COALESCE(excluded.description_en, categories.description_en)"),
			"updated_at":     time.Now(),
		}),
	}).Create(category).Error
	if err != nil {
		return err
	}
	// Re-read the merged row; works identically on postgres and sqlite
	// without relying on RETURNING after a conflict-update.
	return tx.Where("slug = ?", category.Slug).First(category).Error
}

func (r *GormPostRepository) upsertTag(tx *gorm.DB, tag *models.Tag) error {
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name_ar":    gorm.Expr("COALESCE(excluded.name_ar, tags.name_ar)"),
			"name_en":    gorm.Expr("COALESCE(excluded.name_en, tags.name_en)"),
			"updated_at": time.Now(),
		}),
	}).Create(tag).Error
	if err != nil {
		return err
	}
	return tx.Where("slug = ?", tag.Slug).First(tag).Error
}

func (r *GormPostRepository) insertTableOfContents(tx *gorm.DB, postID uint, req *models.CreatePostRequest) error {
	tocs := models.MergeTableOfContents(req.Ar.TableOfContents, req.En.TableOfContents)
	if len(tocs) == 0 {
		return nil
	}
	for i := range tocs {
		tocs[i].PostID = postID
	}
	if err := tx.Create(&tocs).Error; err != nil {
		return fmt.Errorf("post %d: inserting table of contents: %w", postID, err)
	}
	return nil
}

func (r *GormPostRepository) insertFaqItems(tx *gorm.DB, postID uint, req *models.CreatePostRequest, sectionIDByOrder map[int]uint, firstSectionID uint) error {
	merged := models.MergeFaqItems(req.Ar.FaqItems, req.En.FaqItems)
	if len(merged) == 0 {
		return nil
	}
	if firstSectionID == 0 {
		return fmt.Errorf("post %d: faq items require at least one content section", postID)
	}

	rows := make([]models.FaqItem, 0, len(merged))
	for _, item := range merged {
		sectionID := firstSectionID
		if item.SectionOrder != 0 {
			id, ok := sectionIDByOrder[item.SectionOrder]
			if !ok {
				return fmt.Errorf("post %d: faq item %d references unknown section order %d", postID, item.FaqOrder, item.SectionOrder)
			}
			sectionID = id
		}
		row := item.FaqItem
		row.ContentSectionID = sectionID
		rows = append(rows, row)
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("post %d: inserting faq items: %w", postID, err)
	}
	return nil
}

func (r *GormPostRepository) insertRelatedPosts(tx *gorm.DB, postID uint, req *models.CreatePostRequest) error {
	related := models.MergeRelatedPosts(req.Ar.RelatedPosts, req.En.RelatedPosts)
	if len(related) == 0 {
		return nil
	}
	for i := range related {
		related[i].PostID = postID
	}
	if err := tx.Create(&related).Error; err != nil {
		return fmt.Errorf("post %d: inserting related posts: %w", postID, err)
	}
	return nil
}

func (r *GormPostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("ContentSections", func(db *gorm.DB) *gorm.DB { return db.Order("section_order") }).
		Preload("ContentSections.FaqItems", func(db *gorm.DB) *gorm.DB { return db.Order("faq_order") }).
		Preload("TableOfContents", func(db *gorm.DB) *gorm.DB { return db.Order("toc_order") }).
		Preload("RelatedPosts", func(db *gorm.DB) *gorm.DB { return db.Order("relevance_order") }).
		Preload("Categories").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *GormPostRepository) List(ctx context.Context, status string, limit, offset int) ([]models.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Post{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&posts).Error
	return posts, total, err
}

func (r *GormPostRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PublishDue flips draft posts whose publish time has passed to published
// and returns them. Used by the scheduled-publish cron job.
func (r *GormPostRepository) PublishDue(ctx context.Context, now time.Time) ([]models.Post, error) {
	var due []models.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("status = ? AND publish_at IS NOT NULL AND publish_at <= ?", models.PostStatusDraft, now).
			Find(&due).Error; err != nil {
			return err
		}
		if len(due) == 0 {
			return nil
		}

		ids := make([]uint, 0, len(due))
		for i := range due {
			ids = append(ids, due[i].ID)
			due[i].Status = models.PostStatusPublished
		}
		return tx.Model(&models.Post{}).
			Where("id IN ?", ids).
			Update("status", models.PostStatusPublished).Error
	})
	if err != nil {
		return nil, err
	}
	return due, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
