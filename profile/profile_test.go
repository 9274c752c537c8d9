package profile

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureProfile = `
seed = "fixtures-v1"

output "token" {
  kind   = "hex"
  length = 32
}

output "nickname" {
  kind   = "alphabetic"
  length = 8
}

output "discount" {
  kind = "int"
  max  = 100
}

output "ratio" {
  kind = "float"
}
`

func TestParseAndRender(t *testing.T) {
	p, err := Parse([]byte(fixtureProfile), "fixtures.hcl")
	require.NoError(t, err)
	require.Len(t, p.Outputs, 4)
	assert.Equal(t, "fixtures-v1", p.Seed)

	rendered, err := p.Render()
	require.NoError(t, err)
	require.Len(t, rendered, 4)

	assert.Equal(t, "token", rendered[0].Name)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), rendered[0].Value)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z]{8}$`), rendered[1].Value)
	assert.Regexp(t, regexp.MustCompile(`^\d{1,2}$`), rendered[2].Value)
}

func TestRenderDeterministic(t *testing.T) {
	p, err := Parse([]byte(fixtureProfile), "fixtures.hcl")
	require.NoError(t, err)

	first, err := p.Render()
	require.NoError(t, err)
	second, err := p.Render()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncoderChoiceDoesNotChangeOutput(t *testing.T) {
	ref, err := Parse([]byte(`encoder = "reference"`+fixtureProfile), "ref.hcl")
	require.NoError(t, err)
	acc, err := Parse([]byte(`encoder = "accelerated"`+fixtureProfile), "acc.hcl")
	require.NoError(t, err)

	a, err := ref.Render()
	require.NoError(t, err)
	b, err := acc.Render()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDefaultLength(t *testing.T) {
	p, err := Parse([]byte(`output "id" { kind = "alphanumeric" }`), "default.hcl")
	require.NoError(t, err)

	rendered, err := p.Render()
	require.NoError(t, err)
	require.Len(t, rendered, 1)
	assert.Len(t, rendered[0].Value, defaultLength)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown kind", `output "x" { kind = "words" }`},
		{"int without max", `output "x" { kind = "int" }`},
		{"negative length", "output \"x\" {\n  kind = \"hex\"\n  length = -1\n}"},
		{"unknown encoder", `encoder = "turbo"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), tt.name+".hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoadAndRenderAll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.hcl")
	b := filepath.Join(dir, "b.hcl")
	require.NoError(t, os.WriteFile(a, []byte(fixtureProfile), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(strings.Replace(fixtureProfile, "fixtures-v1", "fixtures-v2", 1)), 0o644))

	all, err := RenderAll([]string{a, b})
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Same outputs, different seeds: same shapes, different values.
	assert.Equal(t, all[a][0].Name, all[b][0].Name)
	assert.NotEqual(t, all[a][0].Value, all[b][0].Value)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	assert.Error(t, err)
}
