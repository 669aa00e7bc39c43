package catalog

import "time"

// Wire types mirror the property list layout. The plist tags are the
// name-mapping table between catalog keys and model fields. Required
// fields are pointers so that a missing key can be told apart from a
// zero value.

type wireCatalog struct {
	CatalogVersion *int64                  `plist:"CatalogVersion"`
	ApplePostURL   *string                 `plist:"ApplePostURL"`
	IndexDate      *time.Time              `plist:"IndexDate"`
	Products       *map[string]wireProduct `plist:"Products"`
}

type wireProduct struct {
	ServerMetadataURL        string                `plist:"ServerMetadataURL,omitempty"`
	DeferredSUEnablementDate *time.Time            `plist:"DeferredSUEnablementDate,omitempty"`
	State                    string                `plist:"State,omitempty"`
	Packages                 *[]wirePackage        `plist:"Packages"`
	ExtendedMetaInfo         *wireExtendedMetaInfo `plist:"ExtendedMetaInfo,omitempty"`
	PostDate                 *time.Time            `plist:"PostDate"`
	Distributions            *map[string]string    `plist:"Distributions"`
}

type wireExtendedMetaInfo struct {
	ProductType                                    string                                  `plist:"ProductType,omitempty"`
	BridgeOSPredicateProductOrdering               string                                  `plist:"BridgeOSPredicateProductOrdering,omitempty"`
	BridgeOSSoftwareUpdateEventRecordingServiceURL string                                  `plist:"BridgeOSSoftwareUpdateEventRecordingServiceURL,omitempty"`
	AutoUpdate                                     string                                  `plist:"AutoUpdate,omitempty"`
	ProductVersion                                 string                                  `plist:"ProductVersion,omitempty"`
	InstallAssistantPackageIdentifiers             *wireInstallAssistantPackageIdentifiers `plist:"InstallAssistantPackageIdentifiers,omitempty"`
}

type wireInstallAssistantPackageIdentifiers struct {
	SharedSupport string  `plist:"SharedSupport,omitempty"`
	InstallInfo   *string `plist:"InstallInfo"`
	Info          string  `plist:"Info,omitempty"`
	UpdateBrain   string  `plist:"UpdateBrain,omitempty"`
	BuildManifest string  `plist:"BuildManifest,omitempty"`
	OSInstall     string  `plist:"OSInstall,omitempty"`
}

type wirePackage struct {
	Digest            string  `plist:"Digest,omitempty"`
	Size              *int64  `plist:"Size"`
	IntegrityDataURL  string  `plist:"IntegrityDataURL,omitempty"`
	MetadataURL       string  `plist:"MetadataURL,omitempty"`
	URL               *string `plist:"URL"`
	IntegrityDataSize *int64  `plist:"IntegrityDataSize,omitempty"`
}
