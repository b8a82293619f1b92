// cat/cat065/version.go
package cat065

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	"github.com/davidkohl/gobelix/cat/cat065/uap"
)

// Version constants. Reference document edition 1.3 (April 2007) is the
// only edition modeled; edition 0.12 lacks the I065/REF system-reference-
// point subfield but otherwise decodes identically, so it is not given a
// separate UAP.
const (
	Version13 = "1.3"
)

// NewUAP returns the UAP for the specified version of CAT065.
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version13:
		return uap.NewUAP065()
	default:
		return nil, fmt.Errorf("unsupported CAT065 version: %s", version)
	}
}

// LatestVersion returns the latest available version.
func LatestVersion() string {
	return Version13
}

// AvailableVersions returns all supported versions.
func AvailableVersions() []string {
	return []string{Version13}
}
