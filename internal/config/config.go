package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig
	Artifacts ArtifactsConfig
	Export    ExportConfig
	Display   DisplayConfig
	Barcode   BarcodeConfig
	Log       LogConfig
}

// AppConfig holds presentation shell settings.
type AppConfig struct {
	NoColor bool `mapstructure:"no_color"`
}

// ArtifactsConfig holds settings for generated barcode images.
type ArtifactsConfig struct {
	Dir string `mapstructure:"dir"`
}

// ExportConfig holds PDF export settings.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// DisplayConfig holds settings for the resized display image.
type DisplayConfig struct {
	Width          int `mapstructure:"width"`
	PreviewColumns int `mapstructure:"preview_columns"`
}

// BarcodeConfig holds raster settings for the barcode renderer.
type BarcodeConfig struct {
	ModuleWidth int  `mapstructure:"module_width"`
	BarHeight   int  `mapstructure:"bar_height"`
	QuietZone   int  `mapstructure:"quiet_zone"`
	ShowText    bool `mapstructure:"show_text"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional file, a .env file in the working
// directory, and environment variables with the EANLABEL_ prefix.
func Load(cfgFile string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	v.SetEnvPrefix("EANLABEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// App defaults
	v.SetDefault("app.no_color", false)

	// Artifact defaults
	v.SetDefault("artifacts.dir", "barcode")

	// Export defaults
	v.SetDefault("export.dir", ".")

	// Display defaults
	v.SetDefault("display.width", 250)
	v.SetDefault("display.preview_columns", 100)

	// Barcode defaults
	v.SetDefault("barcode.module_width", 2)
	v.SetDefault("barcode.bar_height", 120)
	v.SetDefault("barcode.quiet_zone", 10)
	v.SetDefault("barcode.show_text", true)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"app.no_color":            "EANLABEL_APP_NO_COLOR",
		"artifacts.dir":           "EANLABEL_ARTIFACTS_DIR",
		"export.dir":              "EANLABEL_EXPORT_DIR",
		"display.width":           "EANLABEL_DISPLAY_WIDTH",
		"display.preview_columns": "EANLABEL_DISPLAY_PREVIEW_COLUMNS",
		"barcode.module_width":    "EANLABEL_BARCODE_MODULE_WIDTH",
		"barcode.bar_height":      "EANLABEL_BARCODE_BAR_HEIGHT",
		"barcode.quiet_zone":      "EANLABEL_BARCODE_QUIET_ZONE",
		"barcode.show_text":       "EANLABEL_BARCODE_SHOW_TEXT",
		"log.level":               "EANLABEL_LOG_LEVEL",
		"log.format":              "EANLABEL_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.App = AppConfig{
		NoColor: v.GetBool("app.no_color"),
	}
	cfg.Artifacts = ArtifactsConfig{
		Dir: v.GetString("artifacts.dir"),
	}
	cfg.Export = ExportConfig{
		Dir: v.GetString("export.dir"),
	}
	cfg.Display = DisplayConfig{
		Width:          v.GetInt("display.width"),
		PreviewColumns: v.GetInt("display.preview_columns"),
	}
	cfg.Barcode = BarcodeConfig{
		ModuleWidth: v.GetInt("barcode.module_width"),
		BarHeight:   v.GetInt("barcode.bar_height"),
		QuietZone:   v.GetInt("barcode.quiet_zone"),
		ShowText:    v.GetBool("barcode.show_text"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Artifacts.Dir) == "" {
		return fmt.Errorf("artifacts.dir must not be empty")
	}
	if c.Display.Width <= 0 {
		return fmt.Errorf("display.width must be positive, got %d", c.Display.Width)
	}
	if c.Barcode.ModuleWidth <= 0 || c.Barcode.BarHeight <= 0 {
		return fmt.Errorf("barcode.module_width and barcode.bar_height must be positive")
	}
	if c.Barcode.QuietZone < 0 {
		return fmt.Errorf("barcode.quiet_zone must not be negative")
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "."
	}
	return nil
}
