package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/forgekit/forge/internal/generators"
)

type Config struct {
	Project    ProjectConfig  `koanf:"project"`
	SourceType string         `koanf:"source-type"`
	BuildTool  string         `koanf:"build-tool"`
	Template   string         `koanf:"template"`
	Extensions []string       `koanf:"extensions"`
	OutputDir  string         `koanf:"output-dir"`
	Templates  TemplateConfig `koanf:"templates"`
	Verbose    bool           `koanf:"verbose"`
}

type ProjectConfig struct {
	GroupID    string `koanf:"group-id"`
	ArtifactID string `koanf:"artifact-id"`
	Version    string `koanf:"version"`
	ClassName  string `koanf:"class-name"`
	Path       string `koanf:"path"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

// BindCreateFlags binds project-creation flags to the create command
func BindCreateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("config", "c", "", "Config file path (default: forge.yaml)")
	flags.StringP("group-id", "g", "", "Project group identifier")
	flags.StringP("artifact-id", "a", "", "Project artifact identifier")
	flags.String("project-version", "", "Project version (default: 1.0.0-SNAPSHOT)")
	flags.String("class-name", "", "Resource class name")
	flags.String("path", "", "Resource path (default: /hello)")
	flags.StringP("source-type", "s", "", "Source type: java, kotlin")
	flags.StringP("build-tool", "b", "", "Build tool: maven, gradle")
	flags.StringP("template", "t", "", "Project template (default: basic-rest)")
	flags.StringSliceP("extensions", "x", nil, "Extensions to add to the build file")
	flags.StringP("output-dir", "o", "", "Output directory (default: artifact id)")
	flags.String("templates", "", "Custom templates directory")
	flags.Bool("verbose", false, "Enable debug logging")
	flags.Bool("dry-run", false, "Print output without writing files")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		if _, err := os.Stat("forge.yaml"); err == nil {
			configFile = "forge.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Project.Version == "" {
		c.Project.Version = "1.0.0-SNAPSHOT"
	}
	if c.Project.Path == "" {
		c.Project.Path = "/hello"
	}
	if c.SourceType == "" {
		c.SourceType = string(generators.Java)
	}
	if c.BuildTool == "" {
		c.BuildTool = string(generators.Maven)
	}
	if c.Template == "" {
		c.Template = "basic-rest"
	}
	if c.OutputDir == "" {
		c.OutputDir = c.Project.ArtifactID
	}
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			return v
		}
		return false
	}

	if v := getString("group-id"); v != "" {
		m["project.group-id"] = v
	}
	if v := getString("artifact-id"); v != "" {
		m["project.artifact-id"] = v
	}
	if v := getString("project-version"); v != "" {
		m["project.version"] = v
	}
	if v := getString("class-name"); v != "" {
		m["project.class-name"] = v
	}
	if v := getString("path"); v != "" {
		m["project.path"] = v
	}
	if v := getString("source-type"); v != "" {
		m["source-type"] = v
	}
	if v := getString("build-tool"); v != "" {
		m["build-tool"] = v
	}
	if v := getString("template"); v != "" {
		m["template"] = v
	}
	if v := getStringSlice("extensions"); len(v) > 0 {
		m["extensions"] = v
	}
	if v := getString("output-dir"); v != "" {
		m["output-dir"] = v
	}
	if v := getString("templates"); v != "" {
		m["templates.dir"] = v
	}
	if cmd.Flags().Changed("verbose") {
		m["verbose"] = getBool("verbose")
	}

	return m
}

func (c *Config) Validate() error {
	if c.Project.GroupID == "" {
		return fmt.Errorf("group id is required")
	}
	if c.Project.ArtifactID == "" {
		return fmt.Errorf("artifact id is required")
	}
	if c.Project.ClassName == "" {
		return fmt.Errorf("class name is required")
	}
	if _, err := generators.ParseSourceType(c.SourceType); err != nil {
		return err
	}
	if _, err := generators.ParseBuildTool(c.BuildTool); err != nil {
		return err
	}
	return nil
}
