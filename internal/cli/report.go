package cli

import (
	"context"
	"io"

	"github.com/nuomi1/swscan/internal/catalog"
	"github.com/nuomi1/swscan/internal/fetch"
	"github.com/nuomi1/swscan/internal/report"
	"github.com/nuomi1/swscan/internal/selector"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CatalogURL is the merged catalog covering every supported macOS release
const CatalogURL = "https://swscan.apple.com/content/catalogs/others/index-15-14-13-12-10.16-10.15-10.14-10.13-10.12-10.11-10.10-10.9-mountainlion-lion-snowleopard-leopard.merged-1.sucatalog.gz"

type section int

const (
	sectionBootCamp section = 1 << iota
	sectionInstallers

	allSections = sectionBootCamp | sectionInstallers
)

// NewBootCampCmd creates the bootcamp command
func NewBootCampCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootcamp",
		Short: "Report BootCamp driver bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, sectionBootCamp)
		},
	}
}

// NewInstallersCmd creates the installers command
func NewInstallersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "installers",
		Short: "Report full macOS installers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, sectionInstallers)
		},
	}
}

func runReport(cmd *cobra.Command, sections section) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return generateReport(ctx, fetch.NewFetcher(), CatalogURL, sections, cmd.OutOrStdout())
}

// generateReport loads the catalog once and runs the requested selectors
// against it in order
func generateReport(ctx context.Context, f fetch.Interface, url string, sections section, out io.Writer) error {
	c, err := catalog.Load(ctx, f, url)
	if err != nil {
		return err
	}

	var selectors []selector.Selector
	if sections&sectionBootCamp != 0 {
		selectors = append(selectors, selector.NewBootCamp(f))
	}
	if sections&sectionInstallers != 0 {
		selectors = append(selectors, selector.NewInstaller(f))
	}

	w := report.NewWriter(out)
	for _, sel := range selectors {
		if err := selector.Run(ctx, sel, c, w); err != nil {
			return err
		}
	}

	logrus.Info("Catalog inspection completed successfully!")
	return nil
}
