// asterix/category.go
package asterix

import "fmt"

// Category represents an ASTERIX category number
type Category uint8

// Define known categories. Numbering and role follow the EUROCONTROL
// category assignments spec.md §4.5 enumerates.
const (
	Cat001 Category = 1   // Monoradar target reports (legacy)
	Cat002 Category = 2   // Monoradar service messages (legacy)
	Cat008 Category = 8   // Monoradar weather/map polar & Cartesian vectors
	Cat011 Category = 11  // A-SMGCS MLAT targets
	Cat017 Category = 17  // Mode S coordination
	Cat019 Category = 19  // MLAT system status
	Cat020 Category = 20  // MLAT target reports
	Cat021 Category = 21  // ADS-B target reports
	Cat023 Category = 23  // CNS/ATM ground station status
	Cat030 Category = 30  // ARTAS system track messages
	Cat031 Category = 31  // ARTAS system track service messages
	Cat032 Category = 32  // ARTAS consolidated track messages
	Cat034 Category = 34  // Monoradar service messages
	Cat048 Category = 48  // Monoradar target reports
	Cat062 Category = 62  // System track (SDPS) data
	Cat063 Category = 63  // Sensor status
	Cat065 Category = 65  // SDPS service status
	Cat252 Category = 252 // ARTAS reference trajectory
)

// maxFSPECLength is a hand-set per-category limit on FSPEC octets; its keys
// are also the categories IsValid accepts. The values are not computed from
// the UAP tables under cat/, and FSPEC.Decode does not consult them.
var maxFSPECLength = map[Category]int{
	Cat001: 2,
	Cat002: 2,
	Cat008: 2,
	Cat011: 4,
	Cat017: 2,
	Cat019: 2,
	Cat020: 5,
	Cat021: 7,
	Cat023: 2,
	Cat030: 4,
	Cat031: 4,
	Cat032: 4,
	Cat034: 2,
	Cat048: 4,
	Cat062: 5,
	Cat063: 2,
	Cat065: 2,
	Cat252: 4,
}

// blockableCategories are categories whose reference document explicitly
// allows multiple records per DataBlock (the common case for all of them);
// kept as a map rather than a blanket true so future restricted categories
// have an obvious place to be carved out.
var blockableCategories = map[Category]bool{
	Cat001: true, Cat002: true, Cat008: true, Cat011: true,
	Cat017: true, Cat019: true, Cat020: true, Cat021: true,
	Cat023: true, Cat030: true, Cat031: true, Cat032: true,
	Cat034: true, Cat048: true, Cat062: true, Cat063: true,
	Cat065: true, Cat252: true,
}

func (c Category) String() string {
	return fmt.Sprintf("CAT%03d", uint8(c))
}

func (c Category) IsValid() bool {
	_, ok := maxFSPECLength[c]
	return ok
}

// IsBlockable reports whether multiple records of this category may be
// packed into a single DataBlock without a fixed, uniform FSPEC.
func (c Category) IsBlockable() bool {
	return blockableCategories[c]
}

// MaxFSPECLength returns the maximum legal FSPEC length in octets for this
// category, or 0 if the category is unknown.
func (c Category) MaxFSPECLength() int {
	return maxFSPECLength[c]
}

// CategoryInfo carries the descriptive metadata the idefix `list` command
// and diagnostic output surface for a category.
type CategoryInfo struct {
	Category    Category
	Name        string
	Description string
	Blockable   bool
	Version     string
}

var categoryInfo = map[Category]CategoryInfo{
	Cat001: {Category: Cat001, Name: "CAT001", Description: "Monoradar Target Reports (legacy)", Blockable: true},
	Cat002: {Category: Cat002, Name: "CAT002", Description: "Monoradar Service Messages (legacy)", Blockable: true},
	Cat008: {Category: Cat008, Name: "CAT008", Description: "Monoradar Weather/Map Vectors", Blockable: true},
	Cat011: {Category: Cat011, Name: "CAT011", Description: "A-SMGCS MLAT Target Reports", Blockable: true},
	Cat017: {Category: Cat017, Name: "CAT017", Description: "Mode S Coordination", Blockable: true},
	Cat019: {Category: Cat019, Name: "CAT019", Description: "MLAT System Status", Blockable: true},
	Cat020: {Category: Cat020, Name: "CAT020", Description: "MLAT Target Reports", Blockable: true},
	Cat021: {Category: Cat021, Name: "CAT021", Description: "ADS-B Target Reports", Blockable: true},
	Cat023: {Category: Cat023, Name: "CAT023", Description: "CNS/ATM Ground Station Status", Blockable: true},
	Cat030: {Category: Cat030, Name: "CAT030", Description: "ARTAS System Track Messages", Blockable: true},
	Cat031: {Category: Cat031, Name: "CAT031", Description: "ARTAS System Track Service Messages", Blockable: true},
	Cat032: {Category: Cat032, Name: "CAT032", Description: "ARTAS Consolidated Track Messages", Blockable: true},
	Cat034: {Category: Cat034, Name: "CAT034", Description: "Monoradar Service Messages", Blockable: true},
	Cat048: {Category: Cat048, Name: "CAT048", Description: "Monoradar Target Reports", Blockable: true},
	Cat062: {Category: Cat062, Name: "CAT062", Description: "System Track Data (SDPS)", Blockable: true},
	Cat063: {Category: Cat063, Name: "CAT063", Description: "Sensor Status Messages", Blockable: true},
	Cat065: {Category: Cat065, Name: "CAT065", Description: "SDPS Service Status Messages", Blockable: true},
	Cat252: {Category: Cat252, Name: "CAT252", Description: "ARTAS Reference Trajectory", Blockable: true},
}

var defaultVersions = map[Category]string{}

// GetCategoryInfo returns descriptive metadata for a category, including
// whichever reference-document edition was last registered for it via
// RegisterDefaultVersion (purely informational; it has no effect on
// decoding).
func GetCategoryInfo(cat Category) CategoryInfo {
	if info, ok := categoryInfo[cat]; ok {
		info.Version = defaultVersions[cat]
		return info
	}
	return CategoryInfo{Category: cat, Name: cat.String(), Description: "unknown"}
}

// RegisterDefaultVersion records which reference-document edition a
// category's decoder was built with, for idefix `list` diagnostics only.
func RegisterDefaultVersion(cat Category, version string) {
	defaultVersions[cat] = version
}
