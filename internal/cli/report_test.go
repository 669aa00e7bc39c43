package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nuomi1/swscan/internal/catalog"
	"github.com/nuomi1/swscan/internal/fetch"
	"github.com/nuomi1/swscan/internal/models"
	"github.com/nuomi1/swscan/internal/utils"
)

// newCatalogServer serves a gzipped catalog at /index.sucatalog.gz and the
// given distribution documents. build receives the server base URL.
func newCatalogServer(t *testing.T, build func(base string) *catalog.Catalog, dists map[string]string) *httptest.Server {
	t.Helper()

	var gz []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/index.sucatalog.gz" {
			_, _ = w.Write(gz)
			return
		}
		if doc, ok := dists[r.URL.Path]; ok {
			_, _ = w.Write([]byte(doc))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	data, err := catalog.Encode(build(server.URL))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	gz, err = utils.GzipCompress(data)
	if err != nil {
		t.Fatalf("GzipCompress failed: %v", err)
	}
	return server
}

func TestGenerateReportEndToEnd(t *testing.T) {
	postDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	server := newCatalogServer(t, func(base string) *catalog.Catalog {
		return &catalog.Catalog{
			CatalogVersion: 2,
			ApplePostURL:   "http://swpost.apple.com/stats",
			IndexDate:      postDate,
			Products: map[string]*catalog.Product{
				"001-00001": {
					PostDate:      postDate,
					Distributions: map[string]string{"English": base + "/001-00001.English.dist"},
					Packages: []catalog.Package{
						{URL: "https://swcdn.apple.com/001-00001/BootCampESD.pkg", Size: 10},
					},
				},
			},
		}
	}, map[string]string{
		"/001-00001.English.dist": "var models = ['MacBookPro10,1'];",
	})

	var out bytes.Buffer
	err := generateReport(context.Background(), fetch.NewFetcher(), server.URL+"/index.sucatalog.gz", allSections, &out)
	if err != nil {
		t.Fatalf("generateReport failed: %v", err)
	}

	want := "BootCamp\n\n" +
		"001-00001\n" +
		"2020-01-01 00:00:00 +0000\n" +
		"MacBookPro10,1\n" +
		"https://swcdn.apple.com/001-00001/BootCampESD.pkg\n" +
		"\n" +
		"\n" +
		"InstallESDDmg\n\n"
	if got := out.String(); got != want {
		t.Errorf("output mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestGenerateReportInstallersOnly(t *testing.T) {
	server := newCatalogServer(t, func(base string) *catalog.Catalog {
		return &catalog.Catalog{
			CatalogVersion: 2,
			ApplePostURL:   "http://swpost.apple.com/stats",
			IndexDate:      time.Date(2020, 11, 12, 0, 0, 0, 0, time.UTC),
			Products: map[string]*catalog.Product{
				"001-00001": {
					PostDate:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
					Distributions: map[string]string{"English": base + "/missing.dist"},
					Packages:      []catalog.Package{{URL: "x/BootCampESD.pkg", Size: 1}},
				},
			},
		}
	}, nil)

	var out bytes.Buffer
	err := generateReport(context.Background(), fetch.NewFetcher(), server.URL+"/index.sucatalog.gz", sectionInstallers, &out)
	if err != nil {
		t.Fatalf("generateReport failed: %v", err)
	}
	if got, want := out.String(), "InstallESDDmg\n\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestGenerateReportCatalogMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var out bytes.Buffer
	err := generateReport(context.Background(), fetch.NewFetcher(), server.URL+"/index.sucatalog.gz", allSections, &out)
	if !models.IsType(err, models.ErrFetch) {
		t.Fatalf("generateReport = %v, want ErrFetch", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing", out.String())
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	got := strings.Join(names, ",")
	if !strings.Contains(got, "bootcamp") || !strings.Contains(got, "installers") {
		t.Errorf("subcommands = %s, want bootcamp and installers", got)
	}
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Errorf("missing --verbose flag")
	}
}

func TestRootCmdRejectsArgs(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"unexpected"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	if err := root.Execute(); err == nil {
		t.Errorf("Execute() with an argument succeeded, want error")
	}
}
