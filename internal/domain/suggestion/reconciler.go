// internal/domain/suggestion/reconciler.go
package suggestion

import (
	"strings"

	"github.com/tradeyardgit/TradeYard/internal/domain/catalog"
)

// Reconciler maps free-text analysis results onto the fixed catalog.
type Reconciler struct {
	catalog *catalog.Catalog
}

func NewReconciler(cat *catalog.Catalog) *Reconciler {
	return &Reconciler{catalog: cat}
}

// Reconcile matches the suggested category against the catalog and, on a
// match, builds the patch to merge into a draft. The category matches by
// exact id or by case-insensitive name. Subcategory and condition pass
// through as raw labels. A nil return means no category matched and the
// suggestion is discarded without error.
func (r *Reconciler) Reconcile(res *Result) *Patch {
	if res == nil || res.Category == "" {
		return nil
	}

	matched := r.matchCategory(res.Category)
	if matched == nil {
		return nil
	}

	return &Patch{
		Title:       res.Title,
		Description: res.Description,
		CategoryID:  matched.ID,
		Subcategory: res.Subcategory,
		Condition:   res.Condition,
		Subcats:     append([]string(nil), matched.Subcategories...),
	}
}

func (r *Reconciler) matchCategory(raw string) *catalog.Category {
	if c, ok := r.catalog.CategoryByID(raw); ok {
		return c
	}
	lowered := strings.ToLower(raw)
	for _, c := range r.catalog.Categories() {
		if strings.ToLower(c.Name) == lowered {
			return &c
		}
	}
	return nil
}
