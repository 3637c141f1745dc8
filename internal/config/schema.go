package config

// Config is the root configuration structure.
type Config struct {
	Catalog  CatalogConfig  `toml:"catalog"`
	Player   PlayerConfig   `toml:"player"`
	Defaults DefaultsConfig `toml:"defaults"`
	Tail     TailConfig     `toml:"tail"`
	TUI      TUIConfig      `toml:"tui"`
	Log      LogConfig      `toml:"log"`
}

// CatalogConfig holds music catalog API settings.
type CatalogConfig struct {
	BaseURL     string `toml:"base_url"`
	SearchLimit int    `toml:"search_limit"`
}

// PlayerConfig holds external media player settings.
type PlayerConfig struct {
	Binary    string   `toml:"binary"`
	Socket    string   `toml:"socket"`
	ExtraArgs []string `toml:"extra_args"`
}

// DefaultsConfig holds default playback settings.
type DefaultsConfig struct {
	Volume  int    `toml:"volume"`
	Shuffle bool   `toml:"shuffle"`
	Repeat  string `toml:"repeat"`
}

// TailConfig holds settings for tail/follow mode.
type TailConfig struct {
	Interval int `toml:"interval"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme           string `toml:"theme"`
	RefreshInterval int    `toml:"refresh_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
