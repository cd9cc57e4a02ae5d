package shared

type Config struct {
	Settings SettingsConfig `mapstructure:"settings" validate:"required"`
	Log      LogConfig      `mapstructure:"log"`
}

type SettingsConfig struct {
	CapacityWarning int    `mapstructure:"capacity-warning" validate:"min=1"`
	DateFormat      string `mapstructure:"date-format" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}
