package analytics

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/angelmondragon/salesboard/api/validators"
	"github.com/angelmondragon/salesboard/internal/analytics"
	"github.com/angelmondragon/salesboard/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/go-chi/chi/v5"
)

const maxCategoryLength = 64

func parseRevenueQuery(r *http.Request) (analytics.RevenueQuery, error) {
	timeRange, err := validators.ParseQueryEnum(r, "range", enums.ParseTimeRange)
	if err != nil {
		return analytics.RevenueQuery{}, err
	}
	if timeRange == "" {
		timeRange = enums.TimeRangeDaily
	}
	return analytics.RevenueQuery{
		Range:    timeRange,
		Category: validators.SanitizeString(r.URL.Query().Get("category"), maxCategoryLength),
	}, nil
}

// categoryParam decodes the {category} path segment; "Home & Kitchen" arrives escaped.
func categoryParam(r *http.Request) (enums.ProductCategory, error) {
	raw, err := url.PathUnescape(chi.URLParam(r, "category"))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	category, err := enums.ParseProductCategory(strings.TrimSpace(raw))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category").
			WithDetails(map[string]any{"field": "category", "allowed": enums.ProductCategories()})
	}
	return category, nil
}
