// cat/cat020/version.go
package cat020

import (
	"fmt"

	"github.com/davidkohl/gobelix/asterix"
	"github.com/davidkohl/gobelix/cat/cat020/uap"
	v15 "github.com/davidkohl/gobelix/cat/cat020/dataitems/v15"
)

// Version constants
const (
	Version10  = "1.0"  // Edition 1.0 (November 2005)
	Version110 = "1.10" // Edition 1.10
	Version15  = "1.5"  // Edition 1.5
)

// NewUAP returns the UAP for the specified version of CAT020
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version10:
		return uap.NewUAP10()
	case Version110:
		return uap.NewUAP110()
	case Version15:
		return uap.NewUAP15()
	default:
		return nil, fmt.Errorf("unsupported CAT020 version: %s", version)
	}
}

// SetOptions forwards vendor-quirk toggles to the v1.5 data items that
// implement them. Has no effect on editions 1.0/1.10, which carry no RE
// field workaround.
func SetOptions(o v15.Cat020Options) {
	v15.SetOptions(o)
}

// LatestVersion returns the latest available version
func LatestVersion() string {
	return Version15
}

// AvailableVersions returns all supported versions
func AvailableVersions() []string {
	return []string{Version10, Version110, Version15}
}
