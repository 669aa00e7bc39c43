package selector

import (
	"context"

	"github.com/nuomi1/swscan/internal/catalog"
	"github.com/nuomi1/swscan/internal/extract"
	"github.com/nuomi1/swscan/internal/fetch"
	"github.com/nuomi1/swscan/internal/report"
)

// BootCampSuffix identifies BootCamp driver packages
const BootCampSuffix = "BootCampESD.pkg"

var modelPattern = extract.MustCompile(extract.ModelPattern)

// BootCamp selects products shipping a BootCamp driver bundle
type BootCamp struct {
	fetcher fetch.Interface
}

// NewBootCamp creates a new BootCamp selector
func NewBootCamp(f fetch.Interface) Selector {
	return &BootCamp{fetcher: f}
}

// Name returns the report section title
func (b *BootCamp) Name() string {
	return "BootCamp"
}

// Select returns products with at least one BootCampESD.pkg package
func (b *BootCamp) Select(c *catalog.Catalog) []catalog.Entry {
	return c.Entries(func(p *catalog.Product) bool {
		return p.HasPackageSuffix(BootCampSuffix)
	})
}

// Describe lists the supported machine models and every package URL in
// catalog order
func (b *BootCamp) Describe(ctx context.Context, e catalog.Entry) (*report.Block, error) {
	text, err := fetchDistribution(ctx, b.fetcher, e)
	if err != nil {
		return nil, err
	}

	return &report.Block{
		ID:       e.ID,
		PostDate: e.Product.PostDate,
		Details:  modelPattern.FindAll(text),
		URLs:     e.Product.PackageURLs(),
	}, nil
}
