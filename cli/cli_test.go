package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/digitorus/pdfnumber"
	"github.com/digitorus/pdfnumber/common"
	"github.com/digitorus/pdfnumber/internal/testpdf"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func notTerminal(t *testing.T, terminal bool) {
	t.Helper()
	orig := stdoutIsTerminal
	t.Cleanup(func() { stdoutIsTerminal = orig })
	stdoutIsTerminal = func() bool { return terminal }
}

func TestStdoutIsTerminal_DevNull(t *testing.T) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	defer func() { _ = devNull.Close() }()

	orig := os.Stdout
	os.Stdout = devNull
	defer func() { os.Stdout = orig }()

	assert.False(t, stdoutIsTerminal())

	input := testpdf.Simple(1)
	in := testpdf.WriteFile(t, "in.pdf", input)
	out, err := run(t, in)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix([]byte(out), input))
}

func TestExecute_Failure(t *testing.T) {
	origArgs := os.Args
	origExit := osExit
	defer func() {
		os.Args = origArgs
		osExit = origExit
	}()

	code := -1
	osExit = func(c int) { code = c }

	os.Args = []string{"pdfnumber", "-o", filepath.Join(t.TempDir(), "out.pdf"), "non_existent_file.pdf"}
	Execute()
	assert.Equal(t, 1, code)

	code = -1
	os.Args = []string{"pdfnumber", "version"}
	Execute()
	assert.Equal(t, -1, code, "no exit on success")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pdfnumber "+Version+"\n", out)
}

func TestStamp_OutputFile(t *testing.T) {
	input := testpdf.Simple(3)
	in := testpdf.WriteFile(t, "in.pdf", input)
	out := filepath.Join(filepath.Dir(in), "out.pdf")

	_, err := run(t, "--skip-pages", "2", "--stamp-format", "{} / {}", "-o", out, in)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, input))
	assert.Greater(t, len(data), len(input))

	doc, err := pdfnumber.OpenFile(out)
	require.NoError(t, err)
	defer func() { _ = doc.Close() }()
	assert.Equal(t, 3, doc.Info().Pages)

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStamp_InPlace(t *testing.T) {
	input := testpdf.Simple(2)
	in := testpdf.WriteFile(t, "in.pdf", input)

	_, err := run(t, "-o", in, in)
	require.NoError(t, err)

	data, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, input))
	assert.Greater(t, len(data), len(input))
}

func TestStamp_Stdout(t *testing.T) {
	notTerminal(t, false)
	input := testpdf.Simple(1)
	in := testpdf.WriteFile(t, "in.pdf", input)

	out, err := run(t, "--position", "tr", in)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix([]byte(out), input))
}

func TestStamp_TerminalRefused(t *testing.T) {
	notTerminal(t, true)
	in := testpdf.WriteFile(t, "in.pdf", testpdf.Simple(1))

	_, err := run(t, in)
	assert.ErrorIs(t, err, ErrTerminalOutput)
}

func TestStamp_ConfigurationErrors(t *testing.T) {
	in := testpdf.WriteFile(t, "in.pdf", testpdf.Simple(1))

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"color", []string{"--text-color", "#xyz"}, pdfnumber.ErrInvalidColorFormat},
		{"align", []string{"--text-align", "justify"}, pdfnumber.ErrUnknownAlign},
		{"anchor", []string{"--position", "mc"}, pdfnumber.ErrUnknownAnchor},
		{"font size", []string{"--font-size", "0"}, pdfnumber.ErrInvalidFontSize},
		{"font family", []string{"--font-family", "Papyrus"}, pdfnumber.ErrUnknownFont},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.pdf")
			args := append(append([]string{}, tt.args...), "-o", out, in)

			_, err := run(t, args...)
			assert.ErrorIs(t, err, tt.want)
			assert.NoFileExists(t, out)
		})
	}

	t.Run("margin", func(t *testing.T) {
		_, err := run(t, "--page-margin", "1,2,3", "-o", filepath.Join(t.TempDir(), "out.pdf"), in)
		assert.Error(t, err)
	})
}

func TestPlan_JSON(t *testing.T) {
	in := testpdf.WriteFile(t, "in.pdf", testpdf.Simple(3))

	out, err := run(t, "plan", "--ignore-pages", "1", "--first-number", "5", in)
	require.NoError(t, err)

	var plan common.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, in, plan.File)
	assert.Equal(t, 3, plan.Document.Pages)
	require.Len(t, plan.Pages, 3)
	assert.False(t, plan.Pages[0].Stamped)
	assert.Equal(t, "5", plan.Pages[1].Text)
	assert.Equal(t, "6", plan.Pages[2].Text)
	assert.Equal(t, 2, plan.StampedPages())
}

func TestPlan_YAML(t *testing.T) {
	in := testpdf.WriteFile(t, "in.pdf", testpdf.Simple(2))

	out, err := run(t, "plan", "--format", "yaml", "--position", "tl", in)
	require.NoError(t, err)

	var plan common.Plan
	require.NoError(t, yaml.Unmarshal([]byte(out), &plan))
	require.Len(t, plan.Pages, 2)
	assert.Equal(t, "left", plan.Pages[0].Align)
	assert.Equal(t, 10.0, plan.Pages[0].X)
}

func TestPlan_UnknownFormat(t *testing.T) {
	in := testpdf.WriteFile(t, "in.pdf", testpdf.Simple(1))
	_, err := run(t, "plan", "--format", "xml", in)
	assert.ErrorContains(t, err, "xml")
}

func TestConfigFile(t *testing.T) {
	in := testpdf.WriteFile(t, "in.pdf", testpdf.Simple(2))
	conf := filepath.Join(filepath.Dir(in), "pdfnumber.conf")
	require.NoError(t, os.WriteFile(conf, []byte(`
first_number = 10
stamp_format = "p. {}"
position = "br"
`), 0o644))

	out, err := run(t, "plan", "--config", conf, "--first-number", "3", in)
	require.NoError(t, err)

	var plan common.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	// The flag wins over the file, the file over the defaults.
	assert.Equal(t, "p. 3", plan.Pages[0].Text)
	assert.Equal(t, "p. 4", plan.Pages[1].Text)
	assert.Equal(t, "right", plan.Pages[0].Align)

	_, err = run(t, "plan", "--config", filepath.Join(filepath.Dir(in), "missing.conf"), in)
	assert.Error(t, err)
}
