package products

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/salesboard/api/responses"
	"github.com/angelmondragon/salesboard/api/validators"
	"github.com/angelmondragon/salesboard/internal/catalog"
	"github.com/angelmondragon/salesboard/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

const maxSearchLength = 100

// List serves the inventory table with its search box and filters, paged by ?limit= and ?cursor=.
func List(service catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		filter, err := parseFilter(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, err := service.List(ctx, filter, pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WritePage(w, list.Products, list.Total, list.NextCursor)
	}
}

func Get(service catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = logg.WithProductID(ctx, productID)

		product, err := service.Get(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// Categories lists the categories present in the catalog, for the filter dropdown.
func Categories(service catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		categories, err := service.Categories(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteList(w, categories, len(categories))
	}
}

func Create(service catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req createProductRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := service.Create(ctx, req.toInput())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

func UpdateInventory(service catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = logg.WithProductID(ctx, productID)

		var req updateInventoryRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := service.UpdateInventory(ctx, productID, req.toInput())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func productIDParam(r *http.Request) (string, error) {
	productID := strings.TrimSpace(chi.URLParam(r, "productId"))
	if productID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "productId is required")
	}
	return productID, nil
}

func parseFilter(r *http.Request) (catalog.Filter, error) {
	category, err := validators.ParseQueryEnum(r, "category", enums.ParseProductCategory)
	if err != nil {
		return catalog.Filter{}, err
	}
	marketplace, err := validators.ParseQueryEnum(r, "marketplace", enums.ParseMarketplace)
	if err != nil {
		return catalog.Filter{}, err
	}
	stock, err := validators.ParseQueryEnum(r, "stock", enums.ParseStockStatus)
	if err != nil {
		return catalog.Filter{}, err
	}
	return catalog.Filter{
		Query:       validators.SanitizeString(r.URL.Query().Get("q"), maxSearchLength),
		Category:    category,
		Marketplace: marketplace,
		Stock:       stock,
	}, nil
}
