package generators

import (
	"fmt"
	"strings"
)

// BuildTool is a supported build system for generated projects.
type BuildTool string

const (
	Maven  BuildTool = "MAVEN"
	Gradle BuildTool = "GRADLE"
)

// BuildTools returns the supported build tools in declaration order.
func BuildTools() []BuildTool {
	return []BuildTool{Maven, Gradle}
}

// ParseBuildTool matches s against the supported build tools,
// case-insensitively.
func ParseBuildTool(s string) (BuildTool, error) {
	for _, bt := range BuildTools() {
		if strings.EqualFold(s, string(bt)) {
			return bt, nil
		}
	}
	return "", fmt.Errorf("unsupported build tool: %s (valid: maven, gradle)", s)
}

func (t BuildTool) String() string {
	return string(t)
}

// BuildFile returns the build descriptor file name at the project root.
func (t BuildTool) BuildFile() string {
	switch t {
	case Gradle:
		return "build.gradle"
	default:
		return "pom.xml"
	}
}

// WrapperFiles returns the wrapper scripts shipped with a generated project.
func (t BuildTool) WrapperFiles() []string {
	switch t {
	case Gradle:
		return []string{"gradlew", "gradlew.bat"}
	default:
		return []string{"mvnw", "mvnw.cmd"}
	}
}
