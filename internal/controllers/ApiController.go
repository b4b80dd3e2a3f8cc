package controllers

import (
	json "github.com/goccy/go-json"
	"net/http"

	"globalpass/internal/catalog"
	"globalpass/internal/models"
	"globalpass/internal/providers"
	"globalpass/internal/services"
)

type ApiController struct {
	logger  providers.Logger
	compat  services.CompatibilityServiceInterface
	catalog catalog.ProviderInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, compat services.CompatibilityServiceInterface, catalogProvider catalog.ProviderInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		compat:  compat,
		catalog: catalogProvider,
		cache:   cache,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "Compute failed for %s: %s", cacheKey, err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// CheckCompatibility answers GET /api/compatibility?brand=&model=&region=.
// The lookup is exact: the UI sends the display names it got from
// /api/compatibility/brands.
func (ac *ApiController) CheckCompatibility(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand")
	model := r.URL.Query().Get("model")
	region := r.URL.Query().Get("region")

	if brand == "" || model == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result := ac.compat.Check(brand, model, region)

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetBrands(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "compat:brands", func() (any, error) {
		return map[string]any{
			"brands":  ac.compat.Brands(),
			"regions": ac.compat.Regions(),
		}, nil
	})
}

func (ac *ApiController) GetCountries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ac.serveFromCacheOrCompute(w, "catalog:countries", func() (any, error) {
		cat, err := ac.catalog.Catalog(ctx)
		if err != nil {
			return nil, err
		}
		return cat.Countries, nil
	})
}

func (ac *ApiController) GetPackages(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	if country == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	ac.serveFromCacheOrCompute(w, "catalog:packages:"+country, func() (any, error) {
		cat, err := ac.catalog.Catalog(ctx)
		if err != nil {
			return nil, err
		}
		pkgs := cat.ByCountry(country)
		if pkgs == nil {
			pkgs = []models.ESIMPackage{}
		}
		return pkgs, nil
	})
}

func (ac *ApiController) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ac.serveFromCacheOrCompute(w, "catalog:stats", func() (any, error) {
		cat, err := ac.catalog.Catalog(ctx)
		if err != nil {
			return nil, err
		}
		return cat.Stats(), nil
	})
}
