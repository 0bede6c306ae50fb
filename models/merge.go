package models

import (
	"sort"

	"github.com/samber/lo"
)

// Bilingual merging. Every creation request carries two structurally equal
// language trees; the functions below collapse them into canonical rows, one
// row per order key or slug, holding both language variants. They are pure:
// no I/O, no clock, no database.

// optional converts an empty request string into a NULL column value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mergedOrders[T any](ar, en []T, key func(T) int) []int {
	orders := lo.Union(
		lo.Map(ar, func(item T, _ int) int { return key(item) }),
		lo.Map(en, func(item T, _ int) int { return key(item) }),
	)
	sort.Ints(orders)
	return orders
}

// MergeContentSections collapses the two section lists into one canonical
// row per section order. The section type prefers the Arabic variant, falls
// back to the English one and defaults to "text".
func MergeContentSections(ar, en []SectionRequest) []ContentSection {
	arByOrder := lo.KeyBy(ar, func(s SectionRequest) int { return s.SectionOrder })
	enByOrder := lo.KeyBy(en, func(s SectionRequest) int { return s.SectionOrder })

	orders := mergedOrders(ar, en, func(s SectionRequest) int { return s.SectionOrder })
	out := make([]ContentSection, 0, len(orders))
	for _, order := range orders {
		section := ContentSection{SectionOrder: order, SectionType: SectionTypeText}
		if e, ok := enByOrder[order]; ok {
			section.HeadingEn = optional(e.Heading)
			section.BodyEn = optional(e.Body)
			if e.SectionType != "" {
				section.SectionType = e.SectionType
			}
		}
		if a, ok := arByOrder[order]; ok {
			section.HeadingAr = optional(a.Heading)
			section.BodyAr = optional(a.Body)
			if a.SectionType != "" {
				section.SectionType = a.SectionType
			}
		}
		out = append(out, section)
	}
	return out
}

// MergeCategories accumulates both lists by slug, Arabic first. An item only
// ever writes its own language's columns, so a slug seen in both lists ends
// up with both names and neither side clobbers the other. Provenance is the
// list an item came from, not the script its name happens to be written in.
func MergeCategories(ar, en []CategoryRequest) []Category {
	var out []Category
	index := make(map[string]int)

	add := func(item CategoryRequest, arabic bool) {
		i, seen := index[item.Slug]
		if !seen {
			out = append(out, Category{Slug: item.Slug})
			i = len(out) - 1
			index[item.Slug] = i
		}
		if arabic {
			out[i].NameAr = optional(item.Name)
			out[i].DescriptionAr = optional(item.Description)
		} else {
			out[i].NameEn = optional(item.Name)
			out[i].DescriptionEn = optional(item.Description)
		}
	}

	for _, item := range ar {
		add(item, true)
	}
	for _, item := range en {
		add(item, false)
	}
	return out
}

// MergeTags works like MergeCategories without descriptions.
func MergeTags(ar, en []TagRequest) []Tag {
	var out []Tag
	index := make(map[string]int)

	add := func(item TagRequest, arabic bool) {
		i, seen := index[item.Slug]
		if !seen {
			out = append(out, Tag{Slug: item.Slug})
			i = len(out) - 1
			index[item.Slug] = i
		}
		if arabic {
			out[i].NameAr = optional(item.Name)
		} else {
			out[i].NameEn = optional(item.Name)
		}
	}

	for _, item := range ar {
		add(item, true)
	}
	for _, item := range en {
		add(item, false)
	}
	return out
}

// MergeTableOfContents collapses both lists into one row per toc order.
func MergeTableOfContents(ar, en []TocRequest) []TableOfContent {
	arByOrder := lo.KeyBy(ar, func(t TocRequest) int { return t.TocOrder })
	enByOrder := lo.KeyBy(en, func(t TocRequest) int { return t.TocOrder })

	orders := mergedOrders(ar, en, func(t TocRequest) int { return t.TocOrder })
	out := make([]TableOfContent, 0, len(orders))
	for _, order := range orders {
		toc := TableOfContent{TocOrder: order}
		if a, ok := arByOrder[order]; ok {
			toc.HeadingAr = optional(a.Heading)
		}
		if e, ok := enByOrder[order]; ok {
			toc.HeadingEn = optional(e.Heading)
		}
		out = append(out, toc)
	}
	return out
}

// MergedFaqItem pairs a canonical FAQ row with the section order it wants to
// attach to. SectionOrder 0 means "first section"; the writer resolves the
// reference against the merged section key space.
type MergedFaqItem struct {
	FaqItem
	SectionOrder int
}

// MergeFaqItems collapses both lists into one row per faq order. The section
// reference prefers the Arabic item's, falling back to the English one.
func MergeFaqItems(ar, en []FaqRequest) []MergedFaqItem {
	arByOrder := lo.KeyBy(ar, func(f FaqRequest) int { return f.FaqOrder })
	enByOrder := lo.KeyBy(en, func(f FaqRequest) int { return f.FaqOrder })

	orders := mergedOrders(ar, en, func(f FaqRequest) int { return f.FaqOrder })
	out := make([]MergedFaqItem, 0, len(orders))
	for _, order := range orders {
		item := MergedFaqItem{FaqItem: FaqItem{FaqOrder: order}}
		if e, ok := enByOrder[order]; ok {
			item.QuestionEn = optional(e.Question)
			item.AnswerEn = optional(e.Answer)
			item.SectionOrder = e.SectionOrder
		}
		if a, ok := arByOrder[order]; ok {
			item.QuestionAr = optional(a.Question)
			item.AnswerAr = optional(a.Answer)
			if a.SectionOrder != 0 {
				item.SectionOrder = a.SectionOrder
			}
		}
		out = append(out, item)
	}
	return out
}

// MergeRelatedPosts collapses both lists into one row per relevance order.
// The target slug is language independent; the Arabic item wins when both
// supply one.
func MergeRelatedPosts(ar, en []RelatedPostRequest) []RelatedPost {
	arByOrder := lo.KeyBy(ar, func(r RelatedPostRequest) int { return r.RelevanceOrder })
	enByOrder := lo.KeyBy(en, func(r RelatedPostRequest) int { return r.RelevanceOrder })

	orders := mergedOrders(ar, en, func(r RelatedPostRequest) int { return r.RelevanceOrder })
	out := make([]RelatedPost, 0, len(orders))
	for _, order := range orders {
		related := RelatedPost{RelevanceOrder: order}
		if e, ok := enByOrder[order]; ok {
			related.RelatedPostTitleEn = optional(e.Title)
			related.RelatedPostSlug = e.Slug
		}
		if a, ok := arByOrder[order]; ok {
			related.RelatedPostTitleAr = optional(a.Title)
			if a.Slug != "" {
				related.RelatedPostSlug = a.Slug
			}
		}
		out = append(out, related)
	}
	return out
}

// MergePropertyFeatures collapses the feature lists of a listing request
// into one row per feature order.
func MergePropertyFeatures(ar, en []FeatureRequest) []PropertyFeature {
	arByOrder := lo.KeyBy(ar, func(f FeatureRequest) int { return f.FeatureOrder })
	enByOrder := lo.KeyBy(en, func(f FeatureRequest) int { return f.FeatureOrder })

	orders := mergedOrders(ar, en, func(f FeatureRequest) int { return f.FeatureOrder })
	out := make([]PropertyFeature, 0, len(orders))
	for _, order := range orders {
		feature := PropertyFeature{FeatureOrder: order}
		if a, ok := arByOrder[order]; ok {
			feature.NameAr = optional(a.Name)
		}
		if e, ok := enByOrder[order]; ok {
			feature.NameEn = optional(e.Name)
		}
		out = append(out, feature)
	}
	return out
}
