package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Items
	AddItem    string `yaml:"add_item"`
	ToggleItem string `yaml:"toggle_item"`
	DeleteItem string `yaml:"delete_item"`

	// Lists
	AddList    string `yaml:"add_list"`
	DeleteList string `yaml:"delete_list"`
	OpenList   string `yaml:"open_list"`

	// Navigation
	Back string `yaml:"back"`
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key bindings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddItem:    "a",
		ToggleItem: " ",
		DeleteItem: "d",
		AddList:    "a",
		DeleteList: "d",
		OpenList:   "enter",
		Back:       "esc",
		Quit:       "q",
	}
}

// applyDefaults fills in any unset key bindings
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	if k.AddItem == "" {
		k.AddItem = defaults.AddItem
	}
	if k.ToggleItem == "" {
		k.ToggleItem = defaults.ToggleItem
	}
	if k.DeleteItem == "" {
		k.DeleteItem = defaults.DeleteItem
	}
	if k.AddList == "" {
		k.AddList = defaults.AddList
	}
	if k.DeleteList == "" {
		k.DeleteList = defaults.DeleteList
	}
	if k.OpenList == "" {
		k.OpenList = defaults.OpenList
	}
	if k.Back == "" {
		k.Back = defaults.Back
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
