package khata

// Settings holds the shop-wide preferences. There is exactly one record,
// stored under the settings collection key.
type Settings struct {
	StoreName string `json:"storeName"`
	Currency  string `json:"currency"`
	Language  string `json:"language"`
	Theme     string `json:"theme"`
}

func (s Settings) Key() string { return "settings" }

// DefaultSettings returns the settings used until the shop saves its own.
func DefaultSettings() Settings {
	return Settings{
		StoreName: "DAWOOD AB COLLECTIONS",
		Currency:  "PKR",
		Language:  "en",
		Theme:     "light",
	}
}
