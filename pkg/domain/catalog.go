package domain

import "strings"

// CategoryInfo is the static metadata shown for a recognized bug category.
type CategoryInfo struct {
	ImageURL string `json:"image_url" yaml:"image_url"`
	Subtitle string `json:"subtitle"  yaml:"subtitle"`
}

// Catalog maps lower-cased category names to their display metadata.
// It is an explicit immutable value passed into the flows at construction,
// not a package-level global, so tests can swap it.
type Catalog map[string]CategoryInfo

// Lookup resolves a category name case-insensitively.
func (c Catalog) Lookup(name string) (CategoryInfo, bool) {
	info, ok := c[strings.ToLower(strings.TrimSpace(name))]
	return info, ok
}

// Categories returns the canonical category labels, in prompt order, for any
// catalog that covers the default set. The label casing here is what the
// choice prompt displays and what the profile stores.
func Categories() []string {
	return []string{"Security", "Crash", "Power", "Performance", "Usability", "Serious Bug", "Other"}
}

// MatchCategory resolves free text to a canonical category label,
// case-insensitively. Returns "" when nothing matches.
func MatchCategory(text string) string {
	clean := strings.ToLower(strings.TrimSpace(text))
	for _, label := range Categories() {
		if strings.ToLower(label) == clean {
			return label
		}
	}
	return ""
}

// DefaultCatalog returns the built-in metadata for the seven categories.
func DefaultCatalog() Catalog {
	return Catalog{
		"security": {
			ImageURL: "https://c1.staticflickr.com/9/8604/16042227002_1d00e0771d_b.jpg",
			Subtitle: "This is a description of the security bug type",
		},
		"crash": {
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/5/50/Windows_7_BSOD.png",
			Subtitle: "This is a description of the crash bug type",
		},
		"power": {
			ImageURL: "https://www.publicdomainpictures.net/en/view-image.php?image=1828&picture=power-button",
			Subtitle: "This is a description of the power bug type",
		},
		"performance": {
			ImageURL: "https://commons.wikimedia.org/wiki/File:High_Performance_Computing_Center_Stuttgart_HLRS_2015_07_Cray_XC40_Hazel_Hen_IO.jpg",
			Subtitle: "This is a description of the performance bug type",
		},
		"usability": {
			ImageURL: "https://commons.wikimedia.org/wiki/File:03-Pau-DevCamp-usability-testing.jpg",
			Subtitle: "This is a description of the usability bug type",
		},
		"serious bug": {
			ImageURL: "https://commons.wikimedia.org/wiki/File:Computer_bug.svg",
			Subtitle: "This is a description of the serious bug type",
		},
		"other": {
			ImageURL: "https://commons.wikimedia.org/wiki/File:Symbol_Resin_Code_7_OTHER.svg",
			Subtitle: "This is a description of the other bug type",
		},
	}
}
