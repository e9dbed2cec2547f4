package generators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildToolBuildFile(t *testing.T) {
	require.Equal(t, "pom.xml", Maven.BuildFile())
	require.Equal(t, "build.gradle", Gradle.BuildFile())
}

func TestBuildToolWrapperFiles(t *testing.T) {
	require.Equal(t, []string{"mvnw", "mvnw.cmd"}, Maven.WrapperFiles())
	require.Equal(t, []string{"gradlew", "gradlew.bat"}, Gradle.WrapperFiles())
}

func TestParseBuildTool(t *testing.T) {
	tests := []struct {
		input   string
		want    BuildTool
		wantErr bool
	}{
		{"maven", Maven, false},
		{"MAVEN", Maven, false},
		{"Gradle", Gradle, false},
		{"bazel", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBuildTool(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
