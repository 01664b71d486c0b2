package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/dashgen/compiler/gen"
	"github.com/syssam/dashgen/compiler/load"
)

const manifestSource = `models:
  - name: Post
    associations:
      - {name: author, macro: belongs_to, class_name: User}
    columns:
      - {name: id, type: bigint}
      - {name: author_id, type: bigint}
      - {name: title, type: varchar(255)}
      - {name: price, type: float}
`

// newApp returns an application root holding a manifest and a routes file.
func newApp(t *testing.T) (dir, manifest string) {
	t.Helper()
	dir = t.TempDir()
	manifest = filepath.Join(dir, "schema.yml")
	require.NoError(t, os.WriteFile(manifest, []byte(manifestSource), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "routes.rb"), []byte("draw do\n  namespace :admin do\n  end\nend\n"), 0o644))
	return dir, manifest
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestDashboardCmd(t *testing.T) {
	dir, manifest := newApp(t)
	out, _, err := run(t, "--manifest", manifest, "dashboard", "Post", "--root", dir)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"      create  " + filepath.Join("app", "dashboards", "post_dashboard.rb"),
		"      create  " + filepath.Join("app", "controllers", "admin", "posts_controller.rb"),
		"       route  resources :posts",
		"",
	}, "\n"), out)

	routes, err := os.ReadFile(filepath.Join(dir, "config", "routes.rb"))
	require.NoError(t, err)
	assert.Equal(t, "draw do\n  namespace :admin do\n    resources :posts\n  end\nend\n", string(routes))

	out, _, err = run(t, "--manifest", manifest, "dashboard", "Post", "--root", dir, "--skip-existing", "--routes=false")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "skip"))
}

func TestInstallCmd(t *testing.T) {
	dir, manifest := newApp(t)
	out, _, err := run(t, "--manifest", manifest, "install", "--root", dir, "--routes=false", "--workers", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "create"))
	assert.NotContains(t, out, "route")
}

func TestFieldsCmd(t *testing.T) {
	_, manifest := newApp(t)
	out, _, err := run(t, "--manifest", manifest, "fields", "Post", "-o", "json")
	require.NoError(t, err)
	var fields []gen.Field
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	assert.Equal(t, []gen.Field{
		{Attribute: "author", Key: "author", Type: "BelongsTo", Expression: "BelongsTo"},
		{Attribute: "id", Key: "id", Type: "Number", Expression: "Number"},
		{Attribute: "title", Key: "title", Type: "String", Expression: "String"},
		{Attribute: "price", Key: "price", Type: "Number", Expression: "Number.with_options(decimals: 2)"},
	}, fields)

	_, _, err = run(t, "--manifest", manifest, "fields", "Comment")
	require.Error(t, err)
}

func TestSchemaDumpCmd(t *testing.T) {
	dir, manifest := newApp(t)
	dump := filepath.Join(dir, "dump.yml")
	_, _, err := run(t, "--manifest", manifest, "schema", "dump", "--format", "yaml", "--out", dump)
	require.NoError(t, err)
	p, err := load.NewManifestProvider(dump)
	require.NoError(t, err)
	models, err := p.Models(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Post"}, models)

	snapshot := filepath.Join(dir, "dump.msgpack")
	_, errOut, err := run(t, "--manifest", manifest, "--log-format", "json", "schema", "dump", "--out", snapshot)
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"dump schema"`)
	out, _, err := run(t, "--snapshot", snapshot, "fields", "Post")
	require.NoError(t, err)
	assert.Contains(t, out, "price      price   Field::Number.with_options(decimals: 2)\n")

	_, _, err = run(t, "--manifest", manifest, "schema", "dump", "--format", "xml")
	require.Error(t, err)
}

func TestRootCmd_Errors(t *testing.T) {
	_, manifest := newApp(t)
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no source", []string{"install"}, "exactly one schema source"},
		{"two sources", []string{"--manifest", manifest, "--graphql", "schema.graphql", "install"}, "exactly one schema source"},
		{"driver without dsn", []string{"--driver", "sqlite", "install"}, "requires --dsn"},
		{"unknown driver", []string{"--driver", "oracle", "--dsn", "x", "install"}, "invalid database driver"},
		{"log format", []string{"--log-format", "xml", "--manifest", manifest, "install"}, "unknown log format"},
		{"namespace", []string{"--manifest", manifest, "install", "--namespace", "Admin"}, "Namespace"},
		{"watch source", []string{"--driver", "sqlite", "--dsn", ":memory:", "watch"}, "file schema source"},
		{"explicit config", []string{"--config", "missing.yml", "--manifest", manifest, "install"}, "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestPrintFields(t *testing.T) {
	fields := []gen.Field{{Attribute: "rich_text_body", Key: "body", Type: "RichText", Expression: "RichText"}}
	var b bytes.Buffer
	require.NoError(t, printFields(&b, "text", fields))
	assert.Equal(t, "ATTRIBUTE       KEY   FIELD\nrich_text_body  body  Field::RichText\n", b.String())

	b.Reset()
	require.NoError(t, printFields(&b, "yaml", fields))
	assert.Equal(t, "- attribute: rich_text_body\n  key: body\n  type: RichText\n  expression: RichText\n", b.String())

	require.Error(t, printFields(&b, "csv", fields))
}

func TestNewLogger(t *testing.T) {
	var b bytes.Buffer
	l, err := newLogger(&b, "text", false)
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "msg=shown")

	b.Reset()
	l, err = newLogger(&b, "json", true)
	require.NoError(t, err)
	l.Debug("visible")
	assert.Contains(t, b.String(), `"msg":"visible"`)
}
