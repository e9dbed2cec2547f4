package generators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceTypeDirs(t *testing.T) {
	tests := []struct {
		sourceType  SourceType
		wantSrc     string
		wantTestSrc string
	}{
		{Java, "src/main/java", "src/test/java"},
		{Kotlin, "src/main/kotlin", "src/test/kotlin"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sourceType), func(t *testing.T) {
			require.Equal(t, tt.wantSrc, tt.sourceType.SrcDir())
			require.Equal(t, tt.wantTestSrc, tt.sourceType.TestSrcDir())
		})
	}
}

func TestSourceTypeTemplatePaths(t *testing.T) {
	require.Equal(t,
		"templates/basic-rest/java/pom.xml-template.ftl",
		Java.BuildFileTemplate("basic-rest", "pom.xml"))
	require.Equal(t,
		"templates/basic-rest/kotlin/build.gradle-template.ftl",
		Kotlin.BuildFileTemplate("basic-rest", "build.gradle"))

	require.Equal(t,
		"templates/basic-rest/java/resource-template.ftl",
		Java.SrcResourceTemplate("basic-rest"))
	require.Equal(t,
		"templates/basic-rest/kotlin/test-resource-template.ftl",
		Kotlin.TestResourceTemplate("basic-rest"))
	require.Equal(t,
		"templates/basic-rest/java/native-test-resource-template.ftl",
		Java.NativeTestResourceTemplate("basic-rest"))
}

func TestSourceTypeTemplatePathsDeterministic(t *testing.T) {
	first := Kotlin.BuildFileTemplate("basic-rest", "build.gradle")
	second := Kotlin.BuildFileTemplate("basic-rest", "build.gradle")
	require.Equal(t, first, second)
}

func TestSourceTypeExtension(t *testing.T) {
	require.Equal(t, ".java", Java.Extension())
	require.Equal(t, ".kt", Kotlin.Extension())
}

func TestStripExtension(t *testing.T) {
	tests := []struct {
		name       string
		sourceType SourceType
		input      string
		want       string
	}{
		{"java suffix removed", Java, "GreetingController.java", "GreetingController"},
		{"kotlin suffix removed", Kotlin, "GreetingController.kt", "GreetingController"},
		{"foreign suffix untouched", Java, "Foo.bar", "Foo.bar"},
		{"kotlin suffix untouched by java", Java, "Foo.kt", "Foo.kt"},
		{"no suffix untouched", Kotlin, "Foo", "Foo"},
		{"empty input untouched", Java, "", ""},
		{"bare extension stripped", Java, ".java", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.sourceType.StripExtension(tt.input))
		})
	}
}

func TestParseSourceType(t *testing.T) {
	tests := []struct {
		input   string
		want    SourceType
		wantErr bool
	}{
		{"java", Java, false},
		{"JAVA", Java, false},
		{"Kotlin", Kotlin, false},
		{"kotlin", Kotlin, false},
		{"scala", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSourceType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "unsupported source type")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
