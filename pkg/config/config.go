// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"github.com/user/valreport/pkg/orchestrator"
	"github.com/user/valreport/pkg/pipeline"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for a validation run.
type Config struct {
	// Run metadata
	Project     string `yaml:"project"`
	Environment string `yaml:"environment"`

	// Output
	OutputPath  string `yaml:"output"`
	OutputDir   string `yaml:"output_dir"`
	SummaryPath string `yaml:"summary"`

	// Pages to validate
	Pages []PageConfig `yaml:"pages"`

	// Browser
	ViewportWidth     int               `yaml:"viewport_width"`
	ViewportHeight    int               `yaml:"viewport_height"`
	TimeoutMs         int               `yaml:"timeout_ms"`
	Headless          bool              `yaml:"headless"`
	ChromePath        string            `yaml:"chrome_path"`
	UserAgent         string            `yaml:"user_agent"`
	Headers           map[string]string `yaml:"headers"`
	IgnoreHTTPSErrors bool              `yaml:"ignore_https_errors"`
	ProxyServer       string            `yaml:"proxy_server"`

	// Banner
	BannerEnabled bool `yaml:"banner"`
	BannerWidth   int  `yaml:"banner_width"`
	BannerHeight  int  `yaml:"banner_height"`

	// Screenshot embedding
	ThumbnailWidth int `yaml:"thumbnail_width"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// PageConfig represents one page to validate.
type PageConfig struct {
	Name     string          `yaml:"name"`
	URL      string          `yaml:"url"`
	Title    string          `yaml:"title"`
	Elements []ElementConfig `yaml:"elements"`
}

// ElementConfig represents one element-presence check.
type ElementConfig struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
	Optional bool   `yaml:"optional"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Project:     "Validation",
		Environment: "local",

		OutputDir: ".",

		ViewportWidth:  1280,
		ViewportHeight: 800,
		TimeoutMs:      30000,
		Headless:       true,

		BannerEnabled: true,
		BannerWidth:   1200,
		BannerHeight:  72,

		ThumbnailWidth: 960,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks that the configuration describes a runnable suite.
func (c Config) Validate() error {
	if len(c.Pages) == 0 {
		return fmt.Errorf("no pages configured")
	}
	for i, page := range c.Pages {
		if page.Name == "" {
			return fmt.Errorf("page %d: name is empty", i)
		}
		if page.URL == "" {
			return fmt.Errorf("page %q: url is empty", page.Name)
		}
		for j, element := range page.Elements {
			if element.Selector == "" {
				return fmt.Errorf("page %q element %d: selector is empty", page.Name, j)
			}
		}
	}
	return nil
}

// ToOrchestrator converts the configuration into an orchestrator.Config.
// Element checks without an explicit name fall back to their selector.
func (c Config) ToOrchestrator(runID string) orchestrator.Config {
	oc := orchestrator.DefaultConfig()

	oc.Project = c.Project
	oc.Environment = c.Environment
	oc.RunID = runID

	oc.OutputPath = c.OutputPath
	if c.OutputDir != "" {
		oc.OutputDir = c.OutputDir
	}

	oc.Browser.Headless = c.Headless
	oc.Browser.ChromePath = c.ChromePath
	oc.Browser.ViewportWidth = c.ViewportWidth
	oc.Browser.ViewportHeight = c.ViewportHeight
	oc.Browser.UserAgent = c.UserAgent
	oc.Browser.Headers = c.Headers
	oc.Browser.IgnoreHTTPSErrors = c.IgnoreHTTPSErrors
	oc.Browser.ProxyServer = c.ProxyServer
	oc.TimeoutMs = c.TimeoutMs

	oc.BannerEnabled = c.BannerEnabled
	oc.BannerWidth = c.BannerWidth
	oc.BannerHeight = c.BannerHeight
	oc.ThumbnailWidth = c.ThumbnailWidth

	for _, page := range c.Pages {
		pageSpec := pipeline.PageSpec{
			Name:  page.Name,
			URL:   page.URL,
			Title: page.Title,
		}
		for _, element := range page.Elements {
			name := element.Name
			if name == "" {
				name = element.Selector
			}
			pageSpec.Elements = append(pageSpec.Elements, pipeline.ElementSpec{
				Name:     name,
				Selector: element.Selector,
				Optional: element.Optional,
			})
		}
		oc.Pages = append(oc.Pages, pageSpec)
	}

	return oc
}
