package scaffold

import (
	"fmt"
	"path"

	"github.com/sirupsen/logrus"
	"go.yaml.in/yaml/v4"

	"github.com/forgekit/forge/internal/config"
	"github.com/forgekit/forge/internal/generators"
	"github.com/forgekit/forge/internal/javalang"
	"github.com/forgekit/forge/internal/templates"
	embeddedtmpl "github.com/forgekit/forge/templates"
)

const (
	applicationConfigPath = "src/main/resources/application.properties"
	manifestPath          = ".forge.yaml"
)

type Generator struct {
	config     *config.Config
	engine     templates.Engine
	logger     *logrus.Logger
	sourceType generators.SourceType
	buildTool  generators.BuildTool
}

// Output is a single generated file, with Path relative to the project root.
type Output struct {
	Path    string
	Content string
}

func New(cfg *config.Config, logger *logrus.Logger) (*Generator, error) {
	sourceType, err := generators.ParseSourceType(cfg.SourceType)
	if err != nil {
		return nil, err
	}

	buildTool, err := generators.ParseBuildTool(cfg.BuildTool)
	if err != nil {
		return nil, err
	}

	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir)
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	return &Generator{
		config:     cfg,
		engine:     engine,
		logger:     logger,
		sourceType: sourceType,
		buildTool:  buildTool,
	}, nil
}

type templateData struct {
	GroupID    string
	ArtifactID string
	Version    string
	Package    string
	ClassName  string
	Path       string
	Extensions []string
	SourceType string
	BuildTool  string
}

type manifest struct {
	GroupID    string   `yaml:"group-id"`
	ArtifactID string   `yaml:"artifact-id"`
	Version    string   `yaml:"version"`
	SourceType string   `yaml:"source-type"`
	BuildTool  string   `yaml:"build-tool"`
	Template   string   `yaml:"template"`
	Extensions []string `yaml:"extensions,omitempty"`
}

// Generate renders every asset of a new project: the build file, the resource
// class with its test and native test, a starter application config, and the
// project manifest.
func (g *Generator) Generate() ([]Output, error) {
	project := g.config.Project

	pkg := javalang.PackageName(project.GroupID, project.ArtifactID)
	pkgPath := javalang.PackagePath(pkg)
	className := javalang.ClassName(g.sourceType.StripExtension(project.ClassName))
	extension := g.sourceType.Extension()

	data := templateData{
		GroupID:    project.GroupID,
		ArtifactID: project.ArtifactID,
		Version:    project.Version,
		Package:    pkg,
		ClassName:  className,
		Path:       project.Path,
		Extensions: g.config.Extensions,
		SourceType: g.sourceType.String(),
		BuildTool:  g.buildTool.String(),
	}

	var outputs []Output

	buildFile, err := g.render(
		g.sourceType.BuildFileTemplate(g.config.Template, g.buildTool.BuildFile()),
		g.buildTool.BuildFile(), data)
	if err != nil {
		return nil, fmt.Errorf("generating build file: %w", err)
	}
	outputs = append(outputs, buildFile)

	resource, err := g.render(
		g.sourceType.SrcResourceTemplate(g.config.Template),
		path.Join(g.sourceType.SrcDir(), pkgPath, className+extension), data)
	if err != nil {
		return nil, fmt.Errorf("generating resource: %w", err)
	}
	outputs = append(outputs, resource)

	test, err := g.render(
		g.sourceType.TestResourceTemplate(g.config.Template),
		path.Join(g.sourceType.TestSrcDir(), pkgPath, className+"Test"+extension), data)
	if err != nil {
		return nil, fmt.Errorf("generating test resource: %w", err)
	}
	outputs = append(outputs, test)

	nativeTest, err := g.render(
		g.sourceType.NativeTestResourceTemplate(g.config.Template),
		path.Join(g.sourceType.TestSrcDir(), pkgPath, "Native"+className+"IT"+extension), data)
	if err != nil {
		return nil, fmt.Errorf("generating native test resource: %w", err)
	}
	outputs = append(outputs, nativeTest)

	outputs = append(outputs, Output{
		Path:    applicationConfigPath,
		Content: "# Configuration file\n# key = value\n",
	})

	manifestOut, err := g.renderManifest()
	if err != nil {
		return nil, err
	}
	outputs = append(outputs, manifestOut)

	g.logger.WithFields(logrus.Fields{
		"source-type": g.sourceType.String(),
		"build-tool":  g.buildTool.String(),
		"class":       className,
	}).Infof("generated %d project files", len(outputs))

	return outputs, nil
}

func (g *Generator) render(templateName, outputPath string, data templateData) (Output, error) {
	content, err := g.engine.Execute(templateName, data)
	if err != nil {
		return Output{}, err
	}
	g.logger.Debugf("rendered %s -> %s", templateName, outputPath)
	return Output{Path: outputPath, Content: content}, nil
}

func (g *Generator) renderManifest() (Output, error) {
	m := manifest{
		GroupID:    g.config.Project.GroupID,
		ArtifactID: g.config.Project.ArtifactID,
		Version:    g.config.Project.Version,
		SourceType: g.sourceType.String(),
		BuildTool:  g.buildTool.String(),
		Template:   g.config.Template,
		Extensions: g.config.Extensions,
	}

	content, err := yaml.Marshal(m)
	if err != nil {
		return Output{}, fmt.Errorf("marshaling project manifest: %w", err)
	}

	return Output{Path: manifestPath, Content: string(content)}, nil
}
