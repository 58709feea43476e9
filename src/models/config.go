package models

// MConfig Structure
type MConfig struct {
	Name          string           `yaml:"name"`
	Host          string           `yaml:"host"`
	Port          int              `yaml:"port"`
	LogLevel      string           `yaml:"log_level"`
	StaticDir     string           `yaml:"static_dir"`
	RetentionDays int              `yaml:"retention_days"`
	Storage       MStorageConfig   `yaml:"storage"`
	Simulator     MSimulatorConfig `yaml:"simulator"`
	Session       MSessionConfig   `yaml:"session"`
	News          MNewsConfig      `yaml:"news"`
}

type MStorageConfig struct {
	DBType             string `yaml:"db_type"`
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
}

type MSimulatorConfig struct {
	Symbols             []string `yaml:"symbols"`
	TickIntervalSeconds int      `yaml:"tick_interval_seconds"`
	PriceMin            float64  `yaml:"price_min"`
	PriceMax            float64  `yaml:"price_max"`
	BaseVolume          float64  `yaml:"base_volume"`
	HistorySize         int      `yaml:"history_size"`
}

type MSessionConfig struct {
	Timezone string `yaml:"timezone"`
}

type MNewsConfig struct {
	DefaultCount int `yaml:"default_count"`
}
