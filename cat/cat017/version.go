// cat/cat017/version.go
package cat017

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	"github.com/davidkohl/gobelix/cat/cat017/uap"
)

const (
	Version13 = "1.3"
)

// NewUAP returns the UAP for the specified version of CAT017.
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version13:
		return uap.NewUAP13()
	default:
		return nil, fmt.Errorf("unsupported CAT017 version: %s", version)
	}
}

func LatestVersion() string       { return Version13 }
func AvailableVersions() []string { return []string{Version13} }
