// Package catalog models a software update catalog (sucatalog) and converts
// it to and from its property list representation.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Preferred distribution keys, tried in order before falling back to the
// lexicographically smallest key.
var preferredDistributions = []string{"English", "en"}

// Catalog is the root of a decoded update catalog.
type Catalog struct {
	CatalogVersion int
	ApplePostURL   string
	IndexDate      time.Time
	Products       map[string]*Product
}

// Product is a single distributable offering in the catalog.
type Product struct {
	ServerMetadataURL        string
	DeferredSUEnablementDate *time.Time
	State                    string
	Packages                 []Package
	ExtendedMetaInfo         *ExtendedMetaInfo
	PostDate                 time.Time
	Distributions            map[string]string
}

// ExtendedMetaInfo holds optional product metadata.
type ExtendedMetaInfo struct {
	ProductType                                    string
	BridgeOSPredicateProductOrdering               string
	BridgeOSSoftwareUpdateEventRecordingServiceURL string
	AutoUpdate                                     string
	ProductVersion                                 string
	InstallAssistantPackageIdentifiers             *InstallAssistantPackageIdentifiers
}

// InstallAssistantPackageIdentifiers names the roles a product's packages fulfill.
type InstallAssistantPackageIdentifiers struct {
	SharedSupport string
	InstallInfo   string
	Info          string
	UpdateBrain   string
	BuildManifest string
	OSInstall     string
}

// Package is one downloadable file of a product.
type Package struct {
	Digest            string
	Size              int64
	IntegrityDataURL  string
	MetadataURL       string
	URL               string
	IntegrityDataSize *int64
}

// Entry pairs a product with its catalog identifier.
type Entry struct {
	ID      string
	Product *Product
}

// Entries returns the products accepted by keep, sorted by identifier.
// A nil keep accepts every product.
func (c *Catalog) Entries(keep func(*Product) bool) []Entry {
	var entries []Entry
	for id, p := range c.Products {
		if keep != nil && !keep(p) {
			continue
		}
		entries = append(entries, Entry{ID: id, Product: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// ProductIDs returns all product identifiers in ascending order.
func (c *Catalog) ProductIDs() []string {
	ids := make([]string, 0, len(c.Products))
	for id := range c.Products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// InstallInfo returns the InstallInfo identifier if the product carries
// install assistant identifiers.
func (p *Product) InstallInfo() (string, bool) {
	if p == nil || p.ExtendedMetaInfo == nil || p.ExtendedMetaInfo.InstallAssistantPackageIdentifiers == nil {
		return "", false
	}
	return p.ExtendedMetaInfo.InstallAssistantPackageIdentifiers.InstallInfo, true
}

// PackageURLs returns the package URLs in catalog order.
func (p *Product) PackageURLs() []string {
	urls := make([]string, 0, len(p.Packages))
	for _, pkg := range p.Packages {
		urls = append(urls, pkg.URL)
	}
	return urls
}

// HasPackageSuffix reports whether any package URL ends with suffix.
func (p *Product) HasPackageSuffix(suffix string) bool {
	for _, pkg := range p.Packages {
		if strings.HasSuffix(pkg.URL, suffix) {
			return true
		}
	}
	return false
}

// DistributionURL picks the distribution document for the product: the
// "English" entry, then "en", then the entry with the smallest key.
func (p *Product) DistributionURL() (string, error) {
	if len(p.Distributions) == 0 {
		return "", fmt.Errorf("product has no distributions")
	}
	for _, key := range preferredDistributions {
		if u, ok := p.Distributions[key]; ok {
			return u, nil
		}
	}
	keys := make([]string, 0, len(p.Distributions))
	for k := range p.Distributions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return p.Distributions[keys[0]], nil
}
