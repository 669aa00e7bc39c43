package catalog

import (
	"context"
	"fmt"

	"github.com/nuomi1/swscan/internal/fetch"
	"github.com/nuomi1/swscan/internal/utils"
	"github.com/sirupsen/logrus"
)

// Load fetches the catalog at url, decompresses it if needed and decodes it.
func Load(ctx context.Context, f fetch.Interface, url string) (*Catalog, error) {
	logrus.Infof("Downloading catalog: %s", url)
	data, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	compression := utils.DetectCompression(data)
	logrus.Debugf("Catalog is %d bytes (%s)", len(data), compression)

	raw, err := utils.Decompress(data)
	if err != nil {
		return nil, decodeError(fmt.Errorf("failed to decompress %s catalog: %w", compression, err))
	}

	c, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	logrus.Infof("Catalog version %d indexed %s with %d products",
		c.CatalogVersion, c.IndexDate.UTC().Format("2006-01-02"), len(c.Products))
	return c, nil
}
