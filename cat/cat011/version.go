// cat/cat011/version.go
package cat011

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	"github.com/davidkohl/gobelix/cat/cat011/uap"
)

// Version constants, per spec.md §4.5.4's worked example on I011/042.
const (
	Version014        = "0.14"
	Version014Sensis  = "0.14Sensis"
	Version017        = "0.17"
)

// NewUAP returns the UAP for the specified version of CAT011. Editions
// other than "0.14Sensis" use a 4-byte I011/042; "0.14Sensis" uses 8.
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version014:
		return uap.New014()
	case Version014Sensis:
		return uap.New014Sensis()
	case Version017:
		return uap.New017()
	default:
		return nil, fmt.Errorf("unsupported CAT011 version: %s", version)
	}
}

// LatestVersion returns the latest available version.
func LatestVersion() string {
	return Version017
}

// AvailableVersions returns all supported versions.
func AvailableVersions() []string {
	return []string{Version014, Version014Sensis, Version017}
}
