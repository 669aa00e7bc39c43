package catalog

import (
	"reflect"
	"testing"
)

func TestEntriesSortedAndFiltered(t *testing.T) {
	c := &Catalog{Products: map[string]*Product{
		"041-00003": {State: "ramped"},
		"001-00001": {State: "ramped"},
		"031-00002": {},
	}}

	var ids []string
	for _, e := range c.Entries(func(p *Product) bool { return p.State == "ramped" }) {
		ids = append(ids, e.ID)
	}
	if want := []string{"001-00001", "041-00003"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("Entries() ids = %v, want %v", ids, want)
	}

	if got := len(c.Entries(nil)); got != 3 {
		t.Errorf("Entries(nil) = %d entries, want 3", got)
	}
	if want := []string{"001-00001", "031-00002", "041-00003"}; !reflect.DeepEqual(c.ProductIDs(), want) {
		t.Errorf("ProductIDs() = %v, want %v", c.ProductIDs(), want)
	}
}

func TestInstallInfoShortCircuits(t *testing.T) {
	tests := []struct {
		name    string
		product *Product
		want    string
		wantOK  bool
	}{
		{"nil product", nil, "", false},
		{"no meta", &Product{}, "", false},
		{"no identifiers", &Product{ExtendedMetaInfo: &ExtendedMetaInfo{ProductType: "macOS"}}, "", false},
		{
			"present",
			&Product{ExtendedMetaInfo: &ExtendedMetaInfo{
				InstallAssistantPackageIdentifiers: &InstallAssistantPackageIdentifiers{InstallInfo: "com.apple.plist.InstallInfo"},
			}},
			"com.apple.plist.InstallInfo",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.product.InstallInfo()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("InstallInfo() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDistributionURL(t *testing.T) {
	tests := []struct {
		name          string
		distributions map[string]string
		want          string
		wantErr       bool
	}{
		{"english preferred", map[string]string{"fr": "f", "English": "E", "en": "e"}, "E", false},
		{"en fallback", map[string]string{"fr": "f", "en": "e"}, "e", false},
		{"smallest key", map[string]string{"ja": "j", "de": "d", "fr": "f"}, "d", false},
		{"empty", map[string]string{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Distributions: tt.distributions}
			got, err := p.DistributionURL()
			if (err != nil) != tt.wantErr {
				t.Fatalf("DistributionURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DistributionURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPackageHelpers(t *testing.T) {
	p := &Product{Packages: []Package{
		{URL: "https://example.com/b/BootCampESD.pkg"},
		{URL: "https://example.com/a/Other.pkg"},
	}}

	if !p.HasPackageSuffix("BootCampESD.pkg") {
		t.Errorf("HasPackageSuffix(BootCampESD.pkg) = false, want true")
	}
	if p.HasPackageSuffix("InstallESDDmg.pkg") {
		t.Errorf("HasPackageSuffix(InstallESDDmg.pkg) = true, want false")
	}
	want := []string{"https://example.com/b/BootCampESD.pkg", "https://example.com/a/Other.pkg"}
	if got := p.PackageURLs(); !reflect.DeepEqual(got, want) {
		t.Errorf("PackageURLs() = %v, want %v", got, want)
	}
}
