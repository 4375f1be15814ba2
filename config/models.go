package config

// Config holds the application configuration.
type Config struct {
	ListenAddress string `mapstructure:"listen_address" validate:"required,hostname_port"`
	PageTitle     string `mapstructure:"page_title" validate:"required"`
	Debug         bool   `mapstructure:"debug"`
}
