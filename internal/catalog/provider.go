package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"

	"globalpass/internal/models"
	"globalpass/internal/providers"
	"globalpass/internal/structures"
)

// ProviderInterface is the read-only catalog capability handed to the
// services. The catalog is fetched lazily, kept in memory for the process
// lifetime and swapped atomically on refresh.
type ProviderInterface interface {
	// Catalog returns the cached catalog, fetching it on first use.
	// Concurrent cold calls share a single in-flight fetch.
	Catalog(ctx context.Context) (*models.Catalog, error)
	// Refresh re-fetches the catalog unconditionally.
	Refresh(ctx context.Context) error
	// Snapshot returns the current catalog without triggering a fetch.
	// Nil when nothing has been loaded yet.
	Snapshot() *models.Catalog
	// Seed installs a catalog only when none is loaded yet. Used to serve
	// from the on-disk snapshot before the first remote fetch completes.
	Seed(c *models.Catalog)
}

type Provider struct {
	conf    *structures.Config
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	client  *http.Client

	current atomic.Pointer[models.Catalog]
	group   singleflight.Group
}

func NewCatalogProvider(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) ProviderInterface {
	return &Provider{
		conf:    conf,
		logger:  logger,
		metrics: metrics,
		client:  &http.Client{Timeout: conf.Catalog.FetchTimeout},
	}
}

func (p *Provider) Catalog(ctx context.Context) (*models.Catalog, error) {
	if c := p.current.Load(); c != nil {
		return c, nil
	}

	v, err, _ := p.group.Do("catalog", func() (interface{}, error) {
		if c := p.current.Load(); c != nil {
			return c, nil
		}
		c, err := p.fetch(ctx)
		if err != nil {
			return nil, err
		}
		p.store(c)
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Catalog), nil
}

func (p *Provider) Refresh(ctx context.Context) error {
	c, err := p.fetch(ctx)
	if err != nil {
		return err
	}
	p.store(c)
	return nil
}

func (p *Provider) Snapshot() *models.Catalog {
	return p.current.Load()
}

func (p *Provider) Seed(c *models.Catalog) {
	if c == nil {
		return
	}
	if p.current.CompareAndSwap(nil, c) {
		p.publishMetrics(c)
		p.logger.Infof(providers.TypeApp, "Catalog seeded from snapshot: %d packages, %d countries", len(c.All), len(c.Countries))
	}
}

func (p *Provider) fetch(ctx context.Context) (*models.Catalog, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.conf.Catalog.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch failed: HTTP %d", resp.StatusCode)
	}

	var c models.Catalog
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		return nil, fmt.Errorf("catalog decode failed: %w", err)
	}

	resolveCurrencies(&c)
	c.Normalize()

	p.metrics.ObserveCatalogRefresh(time.Since(start))
	return &c, nil
}

func (p *Provider) store(c *models.Catalog) {
	p.current.Store(c)
	p.publishMetrics(c)
	p.logger.Infof(providers.TypeApp, "Catalog loaded: %d packages, %d countries", len(c.All), len(c.Countries))
}

func (p *Provider) publishMetrics(c *models.Catalog) {
	p.metrics.SetCatalogCountries(len(c.Countries))
	for country, pkgs := range c.Packages {
		p.metrics.SetCatalogPackages(country, len(pkgs))
	}
}

// resolveCurrencies fills the optional currency field from the embedded raw
// provider payload. Records without an explicit code are USD priced.
func resolveCurrencies(c *models.Catalog) {
	for _, pkgs := range c.Packages {
		for i := range pkgs {
			if pkgs[i].Currency != "" || pkgs[i].RawData == "" {
				continue
			}
			if cur := gjson.Get(pkgs[i].RawData, "currency"); cur.Exists() {
				pkgs[i].Currency = strings.ToUpper(cur.String())
			}
		}
	}
}
