// cat/cat008/version.go
package cat008

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	"github.com/davidkohl/gobelix/cat/cat008/uap"
)

// Version constants
const (
	Version11 = "1.1"
)

// NewUAP returns the UAP for the specified version of CAT008.
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version11:
		return uap.NewUAP11()
	default:
		return nil, fmt.Errorf("unsupported CAT008 version: %s", version)
	}
}

// LatestVersion returns the latest available version.
func LatestVersion() string {
	return Version11
}

// AvailableVersions returns all supported versions.
func AvailableVersions() []string {
	return []string{Version11}
}
