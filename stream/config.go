package stream

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config is the application's YAML configuration.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Topics   struct {
			Stream   string `yaml:"stream"`
			Manifest string `yaml:"manifest"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	FrameRate float64 `yaml:"frameRate"`
	Scene     string  `yaml:"scene"`
	// Assets is the client directory holding svg/ and models/. When set,
	// objects whose files are missing are left out of the animation.
	Assets string `yaml:"assets"`
	HTTP      struct {
		Listen string `yaml:"listen"`
		Static string `yaml:"static"`
	} `yaml:"http"`
}

// DefaultConfig has every field a config file may leave out.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "scenetx"
	c.Mqtt.Topics.Stream = "scenetx/frame"
	c.Mqtt.Topics.Manifest = "scenetx/manifest"
	c.FrameRate = 30
	c.HTTP.Listen = ":3000"
	c.HTTP.Static = "client/dist"
	return c
}

// ReadConfig decodes a YAML file over DefaultConfig.
func ReadConfig(configPath string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(configPath)
	if err != nil {
		return c, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil {
		return c, fmt.Errorf("%s: %w", configPath, err)
	}
	if c.FrameRate <= 0 {
		return c, fmt.Errorf("%s: frameRate must be positive, got %v", configPath, c.FrameRate)
	}
	return c, nil
}

// FrameInterval is the time between frames.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FrameRate)
}
