// Package selector picks product families out of a catalog and describes
// each product from its distribution document.
package selector

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/nuomi1/swscan/internal/catalog"
	"github.com/nuomi1/swscan/internal/fetch"
	"github.com/nuomi1/swscan/internal/models"
	"github.com/nuomi1/swscan/internal/report"
	"github.com/sirupsen/logrus"
)

// Selector interface for product family reports
type Selector interface {
	// Name returns the report section title
	Name() string

	// Select returns the matching products sorted by identifier
	Select(c *catalog.Catalog) []catalog.Entry

	// Describe fetches the product's distribution and builds its report block
	Describe(ctx context.Context, e catalog.Entry) (*report.Block, error)
}

// Run prints the section for sel. Each block is written as soon as it is
// described, and the first failure stops the run.
func Run(ctx context.Context, sel Selector, c *catalog.Catalog, w *report.Writer) error {
	if err := w.Section(sel.Name()); err != nil {
		return err
	}

	entries := sel.Select(c)
	logrus.Infof("Found %d %s products", len(entries), sel.Name())

	for _, e := range entries {
		logrus.Debugf("Describing %s product %s", sel.Name(), e.ID)

		block, err := sel.Describe(ctx, e)
		if err != nil {
			return err
		}
		if err := w.Block(block); err != nil {
			return fmt.Errorf("failed to write %s: %w", e.ID, err)
		}
	}

	return nil
}

// fetchDistribution downloads the product's distribution document as text
func fetchDistribution(ctx context.Context, f fetch.Interface, e catalog.Entry) (string, error) {
	url, err := e.Product.DistributionURL()
	if err != nil {
		return "", &models.SWScanError{Type: models.ErrDecode, Product: e.ID, Err: err}
	}

	data, err := f.Fetch(ctx, url)
	if err != nil {
		return "", models.WithProduct(err, e.ID)
	}

	if !utf8.Valid(data) {
		return "", &models.SWScanError{
			Type:    models.ErrDecode,
			Product: e.ID,
			Err:     fmt.Errorf("distribution %s is not valid UTF-8", url),
		}
	}

	return string(data), nil
}
