package session

import (
	"strings"

	"igold/scraper/internal/domain"
)

// Dedupe collapses products by canonical slug, first-seen wins. Products with
// no slug fall back to a compound (lowercased name, weight) key. Images whose
// owner was dropped are removed. The pass is idempotent.
func Dedupe(products []domain.Product, images []domain.Image) ([]domain.Product, []domain.Image) {
	seen := make(map[string]struct{}, len(products))
	kept := make([]domain.Product, 0, len(products))

	for _, p := range products {
		key := "slug:" + p.Slug
		if p.Slug == "" {
			key = "name:" + strings.ToLower(strings.TrimSpace(p.ProductName)) + "|" + p.Weight
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, p)
	}

	valid := make(map[int]struct{}, len(kept))
	for _, p := range kept {
		valid[p.ProductID] = struct{}{}
	}

	keptImages := make([]domain.Image, 0, len(images))
	for _, img := range images {
		if _, ok := valid[img.ProductID]; ok {
			keptImages = append(keptImages, img)
		}
	}

	return kept, keptImages
}
