// cat/cat019/version.go
package cat019

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	"github.com/davidkohl/gobelix/cat/cat019/uap"
)

const Version12 = "1.2"

// NewUAP returns the UAP for the specified version of CAT019.
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version12:
		return uap.NewUAP12()
	default:
		return nil, fmt.Errorf("unsupported CAT019 version: %s", version)
	}
}

func LatestVersion() string       { return Version12 }
func AvailableVersions() []string { return []string{Version12} }
