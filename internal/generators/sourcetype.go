package generators

import (
	"fmt"
	"strings"
)

// SourceType is a supported project source language. The value is the
// canonical upper-case name; its lower-case form is used as a path segment
// in source directories and template resource paths.
type SourceType string

const (
	Java   SourceType = "JAVA"
	Kotlin SourceType = "KOTLIN"
)

const (
	srcDirPrefix     = "src/main/"
	testSrcDirPrefix = "src/test/"

	buildFileResourceTemplate  = "templates/%s/%s/%s-template.ftl"
	resourceTemplate           = "templates/%s/%s/resource-template.ftl"
	testResourceTemplate       = "templates/%s/%s/test-resource-template.ftl"
	nativeTestResourceTemplate = "templates/%s/%s/native-test-resource-template.ftl"
)

// SourceTypes returns the supported source types in declaration order.
func SourceTypes() []SourceType {
	return []SourceType{Java, Kotlin}
}

// ParseSourceType matches s against the supported source types,
// case-insensitively.
func ParseSourceType(s string) (SourceType, error) {
	for _, st := range SourceTypes() {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unsupported source type: %s (valid: java, kotlin)", s)
}

func (t SourceType) String() string {
	return string(t)
}

func (t SourceType) pathDiscriminator() string {
	return strings.ToLower(string(t))
}

// SrcDir returns the main source directory for this source type,
// e.g. "src/main/java".
func (t SourceType) SrcDir() string {
	return srcDirPrefix + t.pathDiscriminator()
}

// TestSrcDir returns the test source directory, e.g. "src/test/kotlin".
func (t SourceType) TestSrcDir() string {
	return testSrcDirPrefix + t.pathDiscriminator()
}

// BuildFileTemplate returns the template resource path for the named build
// file (e.g. "pom.xml") under the given template kind.
func (t SourceType) BuildFileTemplate(templateName, buildFile string) string {
	return fmt.Sprintf(buildFileResourceTemplate, templateName, t.pathDiscriminator(), buildFile)
}

// SrcResourceTemplate returns the template resource path for the main
// resource class.
func (t SourceType) SrcResourceTemplate(templateName string) string {
	return fmt.Sprintf(resourceTemplate, templateName, t.pathDiscriminator())
}

// TestResourceTemplate returns the template resource path for the resource
// test class.
func (t SourceType) TestResourceTemplate(templateName string) string {
	return fmt.Sprintf(testResourceTemplate, templateName, t.pathDiscriminator())
}

// NativeTestResourceTemplate returns the template resource path for the
// native-image resource test class.
func (t SourceType) NativeTestResourceTemplate(templateName string) string {
	return fmt.Sprintf(nativeTestResourceTemplate, templateName, t.pathDiscriminator())
}

// Extension returns the file extension for this source type, including the
// leading dot.
func (t SourceType) Extension() string {
	switch t {
	case Kotlin:
		return ".kt"
	case Java:
		return ".java"
	default:
		return ""
	}
}

// StripExtension removes this source type's extension from name if present.
// Any other input, including the empty string, is returned unchanged.
func (t SourceType) StripExtension(name string) string {
	return strings.TrimSuffix(name, t.Extension())
}
