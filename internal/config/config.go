// internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Printer  PrinterConfig  `mapstructure:"printer"`
	History  HistoryConfig  `mapstructure:"history"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	App      AppConfig      `mapstructure:"app"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host" validate:"required"`
	Port         string        `mapstructure:"port" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`

	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PrinterConfig represents printer transport and session configuration
type PrinterConfig struct {
	Transport string        `mapstructure:"transport" validate:"required"`
	Host      string        `mapstructure:"host"`
	Port      string        `mapstructure:"port"`
	Timeout   time.Duration `mapstructure:"timeout"`
	StepDelay time.Duration `mapstructure:"step_delay"`

	// PushDefaultsOnStart transmits the full default command set to the
	// device when the service starts.
	PushDefaultsOnStart bool `mapstructure:"push_defaults_on_start"`

	Serial   SerialPortConfig `mapstructure:"serial"`
	USB      USBPortConfig    `mapstructure:"usb"`
	Defaults DefaultsConfig   `mapstructure:"defaults"`
}

// SerialPortConfig represents serial port configuration
type SerialPortConfig struct {
	Device   string `mapstructure:"device"`
	BaudRate int    `mapstructure:"baud_rate"`
	DataBits int    `mapstructure:"data_bits"`
	StopBits int    `mapstructure:"stop_bits"`
	Parity   string `mapstructure:"parity"`
}

// USBPortConfig represents USB endpoint configuration
type USBPortConfig struct {
	VendorID  string `mapstructure:"vendor_id"`
	ProductID string `mapstructure:"product_id"`
	Endpoint  int    `mapstructure:"endpoint"`
}

// DefaultsConfig represents the session settings applied at startup
type DefaultsConfig struct {
	CPI         string  `mapstructure:"cpi"`
	Font        string  `mapstructure:"font"`
	Spacing     string  `mapstructure:"spacing"`
	SpacingN    int     `mapstructure:"spacing_n"`
	Quality     string  `mapstructure:"quality"`
	Speed       string  `mapstructure:"speed"`
	Zero        string  `mapstructure:"zero"`
	Skip        int     `mapstructure:"skip"`
	LeftMargin  int     `mapstructure:"left_margin"`
	RightMargin float64 `mapstructure:"right_margin"`
	Mode        string  `mapstructure:"mode"`
}

// HistoryConfig controls persistence of transmission history
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	User         string        `mapstructure:"user"`
	Password     string        `mapstructure:"password"`
	DBName       string        `mapstructure:"dbname"`
	SSLMode      string        `mapstructure:"sslmode"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	MaxLifetime  time.Duration `mapstructure:"max_lifetime"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level" validate:"required"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// AppConfig represents application metadata
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Version     string `mapstructure:"version" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required"`
	Debug       bool   `mapstructure:"debug"`
}

// Load loads configuration from file and environment variables. A
// missing config file is not an error; defaults and environment
// variables cover every key.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	// Environment variable support
	viper.SetEnvPrefix("OKIDATA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8090")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Printer defaults
	viper.SetDefault("printer.transport", "tcp")
	viper.SetDefault("printer.host", "192.168.1.200")
	viper.SetDefault("printer.port", "9100")
	viper.SetDefault("printer.timeout", "5s")
	viper.SetDefault("printer.step_delay", "10ms")
	viper.SetDefault("printer.push_defaults_on_start", false)

	viper.SetDefault("printer.serial.device", "/dev/ttyUSB0")
	viper.SetDefault("printer.serial.baud_rate", 9600)
	viper.SetDefault("printer.serial.data_bits", 8)
	viper.SetDefault("printer.serial.stop_bits", 1)
	viper.SetDefault("printer.serial.parity", "none")

	viper.SetDefault("printer.usb.vendor_id", "0x06bc")
	viper.SetDefault("printer.usb.product_id", "0x0000")
	viper.SetDefault("printer.usb.endpoint", 1)

	// Session defaults matching the MICROLINE power-on state
	viper.SetDefault("printer.defaults.cpi", "10 cpi")
	viper.SetDefault("printer.defaults.font", "Block Graphic Set")
	viper.SetDefault("printer.defaults.spacing", "1/6")
	viper.SetDefault("printer.defaults.spacing_n", 9)
	viper.SetDefault("printer.defaults.quality", "HSD/SSD")
	viper.SetDefault("printer.defaults.speed", "Full")
	viper.SetDefault("printer.defaults.zero", "Slashed Zero")
	viper.SetDefault("printer.defaults.skip", 0)
	viper.SetDefault("printer.defaults.left_margin", 0)
	viper.SetDefault("printer.defaults.right_margin", 7.5)
	viper.SetDefault("printer.defaults.mode", "LINE_BY_LINE")

	// History defaults
	viper.SetDefault("history.enabled", false)

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.dbname", "okidata")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.max_lifetime", "5m")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 3)
	viper.SetDefault("logging.max_age", 28)
	viper.SetDefault("logging.compress", true)

	// App defaults
	viper.SetDefault("app.name", "network-okidata")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.debug", false)
}

// validate validates the configuration
func validate(config *Config) error {
	// Basic validation
	if config.Server.Host == "" {
		return fmt.Errorf("server.host is required")
	}
	if config.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}

	// Validate transport
	validTransports := []string{"tcp", "serial", "usb"}
	isValidTransport := false
	for _, t := range validTransports {
		if config.Printer.Transport == t {
			isValidTransport = true
			break
		}
	}
	if !isValidTransport {
		return fmt.Errorf("printer.transport must be one of: %v", validTransports)
	}

	if config.Printer.Transport == "tcp" && config.Printer.Host == "" {
		return fmt.Errorf("printer.host is required for tcp transport")
	}
	if config.Printer.Transport == "serial" && config.Printer.Serial.Device == "" {
		return fmt.Errorf("printer.serial.device is required for serial transport")
	}

	// Validate mode
	validModes := []string{"LIVE", "LINE_BY_LINE"}
	isValidMode := false
	for _, m := range validModes {
		if config.Printer.Defaults.Mode == m {
			isValidMode = true
			break
		}
	}
	if !isValidMode {
		return fmt.Errorf("printer.defaults.mode must be one of: %v", validModes)
	}

	if config.History.Enabled && config.Database.Host == "" {
		return fmt.Errorf("database.host is required when history is enabled")
	}

	// Validate logging level
	validLevels := []string{"debug", "info", "warn", "error", "fatal"}
	isValidLevel := false
	for _, level := range validLevels {
		if config.Logging.Level == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}

	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.DBName, c.Database.SSLMode)
}

// GetServerAddr returns the server address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction checks if the environment is production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment checks if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsDebugEnabled checks if debug mode is enabled
func (c *Config) IsDebugEnabled() bool {
	return c.App.Debug || c.IsDevelopment()
}
