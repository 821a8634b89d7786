package domain

// Setting is one key/value row of the settings tab.
type Setting struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updatedAt"`
}

// SettingKeys is the closed set of keys the settings tab may hold. Unknown
// keys are dropped on read and rejected on write.
var SettingKeys = []string{
	"storefrontLogoUrl",
	"storefrontHeroVideoUrl",
}

func KnownSettingKey(key string) bool {
	for _, k := range SettingKeys {
		if k == key {
			return true
		}
	}
	return false
}
