package catalog

import (
	"fmt"
	"sort"

	"github.com/nuomi1/swscan/internal/models"
	"howett.net/plist"
)

// Decode parses a property list encoded catalog. Any of the XML, binary or
// OpenStep plist formats is accepted. A missing required key or a value of
// the wrong type yields an ErrDecode error.
func Decode(data []byte) (*Catalog, error) {
	var w wireCatalog
	if _, err := plist.Unmarshal(data, &w); err != nil {
		return nil, decodeError(fmt.Errorf("failed to parse catalog: %w", err))
	}

	c, err := w.toModel()
	if err != nil {
		return nil, decodeError(err)
	}
	return c, nil
}

func decodeError(err error) error {
	return &models.SWScanError{Type: models.ErrDecode, Err: err}
}

func missing(path string) error {
	return fmt.Errorf("missing required key %s", path)
}

func (w *wireCatalog) toModel() (*Catalog, error) {
	switch {
	case w.CatalogVersion == nil:
		return nil, missing("CatalogVersion")
	case w.ApplePostURL == nil:
		return nil, missing("ApplePostURL")
	case w.IndexDate == nil:
		return nil, missing("IndexDate")
	case w.Products == nil:
		return nil, missing("Products")
	}

	c := &Catalog{
		CatalogVersion: int(*w.CatalogVersion),
		ApplePostURL:   *w.ApplePostURL,
		IndexDate:      *w.IndexDate,
		Products:       make(map[string]*Product, len(*w.Products)),
	}

	// Walk in key order so the reported error is stable.
	ids := make([]string, 0, len(*w.Products))
	for id := range *w.Products {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		wp := (*w.Products)[id]
		p, err := wp.toModel(fmt.Sprintf("Products[%q]", id))
		if err != nil {
			return nil, err
		}
		c.Products[id] = p
	}
	return c, nil
}

func (w *wireProduct) toModel(path string) (*Product, error) {
	switch {
	case w.Packages == nil:
		return nil, missing(path + ".Packages")
	case w.PostDate == nil:
		return nil, missing(path + ".PostDate")
	case w.Distributions == nil:
		return nil, missing(path + ".Distributions")
	}

	p := &Product{
		ServerMetadataURL:        w.ServerMetadataURL,
		DeferredSUEnablementDate: w.DeferredSUEnablementDate,
		State:                    w.State,
		Packages:                 make([]Package, 0, len(*w.Packages)),
		PostDate:                 *w.PostDate,
		Distributions:            make(map[string]string, len(*w.Distributions)),
	}

	for i, wpkg := range *w.Packages {
		pkgPath := fmt.Sprintf("%s.Packages[%d]", path, i)
		if wpkg.Size == nil {
			return nil, missing(pkgPath + ".Size")
		}
		if wpkg.URL == nil {
			return nil, missing(pkgPath + ".URL")
		}
		p.Packages = append(p.Packages, Package{
			Digest:            wpkg.Digest,
			Size:              *wpkg.Size,
			IntegrityDataURL:  wpkg.IntegrityDataURL,
			MetadataURL:       wpkg.MetadataURL,
			URL:               *wpkg.URL,
			IntegrityDataSize: wpkg.IntegrityDataSize,
		})
	}

	for k, v := range *w.Distributions {
		p.Distributions[k] = v
	}

	if w.ExtendedMetaInfo != nil {
		meta := &ExtendedMetaInfo{
			ProductType:                      w.ExtendedMetaInfo.ProductType,
			BridgeOSPredicateProductOrdering: w.ExtendedMetaInfo.BridgeOSPredicateProductOrdering,
			BridgeOSSoftwareUpdateEventRecordingServiceURL: w.ExtendedMetaInfo.BridgeOSSoftwareUpdateEventRecordingServiceURL,
			AutoUpdate:     w.ExtendedMetaInfo.AutoUpdate,
			ProductVersion: w.ExtendedMetaInfo.ProductVersion,
		}
		if ids := w.ExtendedMetaInfo.InstallAssistantPackageIdentifiers; ids != nil {
			if ids.InstallInfo == nil {
				return nil, missing(path + ".ExtendedMetaInfo.InstallAssistantPackageIdentifiers.InstallInfo")
			}
			meta.InstallAssistantPackageIdentifiers = &InstallAssistantPackageIdentifiers{
				SharedSupport: ids.SharedSupport,
				InstallInfo:   *ids.InstallInfo,
				Info:          ids.Info,
				UpdateBrain:   ids.UpdateBrain,
				BuildManifest: ids.BuildManifest,
				OSInstall:     ids.OSInstall,
			}
		}
		p.ExtendedMetaInfo = meta
	}

	return p, nil
}
