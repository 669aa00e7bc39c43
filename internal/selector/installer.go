package selector

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/nuomi1/swscan/internal/catalog"
	"github.com/nuomi1/swscan/internal/extract"
	"github.com/nuomi1/swscan/internal/fetch"
	"github.com/nuomi1/swscan/internal/models"
	"github.com/nuomi1/swscan/internal/report"
)

// InstallInfoID marks full macOS installer products
const InstallInfoID = "com.apple.plist.InstallInfo"

// InstallerSuffixes are the package names reported for installers
var InstallerSuffixes = []string{
	"InstallAssistantAuto.pkg",
	"RecoveryHDMetaDmg.pkg",
	"InstallESDDmg.pkg",
	"InstallAssistant.pkg",
}

var (
	buildPattern   = extract.MustCompile(extract.BuildPattern)
	versionPattern = extract.MustCompile(extract.VersionPattern)
	systemPattern  = extract.MustCompile(extract.SystemPattern)
)

// Installer selects full macOS installer products
type Installer struct {
	fetcher fetch.Interface
}

// NewInstaller creates a new Installer selector
func NewInstaller(f fetch.Interface) Selector {
	return &Installer{fetcher: f}
}

// Name returns the report section title
func (i *Installer) Name() string {
	return "InstallESDDmg"
}

// Select returns products whose InstallInfo identifier is InstallInfoID.
// Products without install assistant metadata are skipped.
func (i *Installer) Select(c *catalog.Catalog) []catalog.Entry {
	return c.Entries(func(p *catalog.Product) bool {
		info, ok := p.InstallInfo()
		return ok && info == InstallInfoID
	})
}

// Describe reports the system name, version and build from the
// distribution, and the installer package URLs sorted by URL
func (i *Installer) Describe(ctx context.Context, e catalog.Entry) (*report.Block, error) {
	text, err := fetchDistribution(ctx, i.fetcher, e)
	if err != nil {
		return nil, err
	}

	build, err := buildPattern.FindFirst(text)
	if err != nil {
		return nil, models.WithProduct(err, e.ID)
	}
	version, err := versionPattern.FindFirst(text)
	if err != nil {
		return nil, models.WithProduct(err, e.ID)
	}
	system, err := systemPattern.FindFirst(text)
	if err != nil {
		return nil, models.WithProduct(err, e.ID)
	}

	return &report.Block{
		ID:       e.ID,
		PostDate: e.Product.PostDate,
		Details:  []string{fmt.Sprintf("%s %s %s", system, version, build)},
		URLs:     installerURLs(e.Product.Packages),
	}, nil
}

// installerURLs sorts packages by URL and keeps installer payloads
func installerURLs(packages []catalog.Package) []string {
	urls := make([]string, 0, len(packages))
	for _, pkg := range packages {
		urls = append(urls, pkg.URL)
	}
	sort.Strings(urls)

	var kept []string
	for _, u := range urls {
		for _, suffix := range InstallerSuffixes {
			if strings.HasSuffix(u, suffix) {
				kept = append(kept, u)
				break
			}
		}
	}
	return kept
}
