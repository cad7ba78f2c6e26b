package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	RefilterDelayMs int    `mapstructure:"refilter_delay_ms"`
	PollIntervalMs  int    `mapstructure:"poll_interval_ms"`
	ReadBatch       int    `mapstructure:"read_batch"`
	BufferSize      int    `mapstructure:"buffer_size"`
	Icons           bool   `mapstructure:"icons"`
	LogLevel        string `mapstructure:"log_level"`
	ColorCursor     string `mapstructure:"color_cursor"`
	ColorSelected   string `mapstructure:"color_selected"`
	ColorDim        string `mapstructure:"color_dim"`
	ColorBorder     string `mapstructure:"color_border"`
	ColorLabel      string `mapstructure:"color_label"`
	ColorMarked     string `mapstructure:"color_marked"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("refilter_delay_ms", 200) // Debounce before re-evaluating visibility
	viper.SetDefault("poll_interval_ms", 10)   // Reader poll cadence while input is open
	viper.SetDefault("read_batch", 20)         // Items ingested per poll
	viper.SetDefault("buffer_size", 64*1024)   // Max size of a single item
	viper.SetDefault("icons", false)           // Resolve path glyphs for items
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("color_cursor", "212")
	viper.SetDefault("color_selected", "236")
	viper.SetDefault("color_dim", "241")
	viper.SetDefault("color_border", "240")
	viper.SetDefault("color_label", "6")
	viper.SetDefault("color_marked", "2")

	viper.SetConfigName("tmenu")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "tmenu"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("TMENU")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetRefilterDelayMs returns the refilter debounce delay in milliseconds
func GetRefilterDelayMs() int {
	return viper.GetInt("refilter_delay_ms")
}

// GetPollIntervalMs returns the reader poll interval in milliseconds
func GetPollIntervalMs() int {
	return viper.GetInt("poll_interval_ms")
}

// GetReadBatch returns how many items one reader poll may ingest
func GetReadBatch() int {
	return viper.GetInt("read_batch")
}

// GetBufferSize returns the maximum size of a single item in bytes
func GetBufferSize() int {
	return viper.GetInt("buffer_size")
}

// GetIcons returns whether to resolve glyphs for items naming files
func GetIcons() bool {
	return viper.GetBool("icons")
}

// GetLogLevel returns the stderr log level
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetColorCursor returns the cursor color
func GetColorCursor() string {
	return viper.GetString("color_cursor")
}

// GetColorSelected returns the selected-row background color
func GetColorSelected() string {
	return viper.GetString("color_selected")
}

// GetColorDim returns the dim text color
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorBorder returns the divider color
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetColorLabel returns the label color
func GetColorLabel() string {
	return viper.GetString("color_label")
}

// GetColorMarked returns the multi-select mark color
func GetColorMarked() string {
	return viper.GetString("color_marked")
}
