package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		version  string
		want     string
	}{
		{"workspace template", WorkspaceKeyTemplate, "2019", `Software\Sybase\PowerBuilder\2019\Workspace`},
		{"version containing placeholder is literal", WorkspaceKeyTemplate, "%VERSION%", `Software\Sybase\PowerBuilder\%VERSION%\Workspace`},
		{"version containing placeholder twice", WorkspaceKeyTemplate, "a%VERSION%b", `Software\Sybase\PowerBuilder\a%VERSION%b\Workspace`},
		{"only first occurrence replaced", `%VERSION%\%VERSION%`, "x", `x\%VERSION%`},
		{"no placeholder", `Software\Fixed`, "2019", `Software\Fixed`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePath(tt.template, tt.version))
		})
	}
}

func TestResolvePath_Deterministic(t *testing.T) {
	for _, v := range []string{"2017", "2019", "12.5", "", "%VERSION%"} {
		assert.Equal(t, ResolvePath(WorkspaceKeyTemplate, v), ResolvePath(WorkspaceKeyTemplate, v))
	}
}

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		escape string
		want   string
	}{
		{"pbw path", `C:$Projects$AppA$appa.pbw`, "$", `C:\Projects\AppA\appa.pbw`},
		{"encoded form", "C$3AProjects$5CAppA", "$", `C\3AProjects\5CAppA`},
		{"no escape characters", "plain", "$", "plain"},
		{"alternate escape", "C:#src#app.pbw", "#", `C:\src\app.pbw`},
		{"empty escape leaves name", "C:$x", "", "C:$x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayPath(tt.raw, tt.escape)
			assert.Equal(t, tt.want, got)
			if tt.escape != "" {
				assert.False(t, strings.Contains(got, tt.escape))
			}
		})
	}
}
