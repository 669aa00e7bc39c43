package catalog

import (
	"fmt"

	"howett.net/plist"
)

// Encode renders the catalog as an XML property list using the same key
// names Decode reads. Optional fields left unset are omitted.
func Encode(c *Catalog) ([]byte, error) {
	w := fromModel(c)
	data, err := plist.MarshalIndent(w, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return data, nil
}

func fromModel(c *Catalog) *wireCatalog {
	version := int64(c.CatalogVersion)
	postURL := c.ApplePostURL
	indexDate := c.IndexDate

	products := make(map[string]wireProduct, len(c.Products))
	for id, p := range c.Products {
		products[id] = productFromModel(p)
	}

	return &wireCatalog{
		CatalogVersion: &version,
		ApplePostURL:   &postURL,
		IndexDate:      &indexDate,
		Products:       &products,
	}
}

func productFromModel(p *Product) wireProduct {
	packages := make([]wirePackage, 0, len(p.Packages))
	for _, pkg := range p.Packages {
		size := pkg.Size
		url := pkg.URL
		packages = append(packages, wirePackage{
			Digest:            pkg.Digest,
			Size:              &size,
			IntegrityDataURL:  pkg.IntegrityDataURL,
			MetadataURL:       pkg.MetadataURL,
			URL:               &url,
			IntegrityDataSize: pkg.IntegrityDataSize,
		})
	}

	distributions := make(map[string]string, len(p.Distributions))
	for k, v := range p.Distributions {
		distributions[k] = v
	}
	postDate := p.PostDate

	w := wireProduct{
		ServerMetadataURL:        p.ServerMetadataURL,
		DeferredSUEnablementDate: p.DeferredSUEnablementDate,
		State:                    p.State,
		Packages:                 &packages,
		PostDate:                 &postDate,
		Distributions:            &distributions,
	}

	if m := p.ExtendedMetaInfo; m != nil {
		w.ExtendedMetaInfo = &wireExtendedMetaInfo{
			ProductType:                      m.ProductType,
			BridgeOSPredicateProductOrdering: m.BridgeOSPredicateProductOrdering,
			BridgeOSSoftwareUpdateEventRecordingServiceURL: m.BridgeOSSoftwareUpdateEventRecordingServiceURL,
			AutoUpdate:     m.AutoUpdate,
			ProductVersion: m.ProductVersion,
		}
		if ids := m.InstallAssistantPackageIdentifiers; ids != nil {
			installInfo := ids.InstallInfo
			w.ExtendedMetaInfo.InstallAssistantPackageIdentifiers = &wireInstallAssistantPackageIdentifiers{
				SharedSupport: ids.SharedSupport,
				InstallInfo:   &installInfo,
				Info:          ids.Info,
				UpdateBrain:   ids.UpdateBrain,
				BuildManifest: ids.BuildManifest,
				OSInstall:     ids.OSInstall,
			}
		}
	}

	return w
}
