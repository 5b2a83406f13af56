package e2e_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the gojson command with the given stdin and arguments
func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "../../cmd/gojson"}, args...)...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

func TestEndToEnd_PrettyPrint(t *testing.T) {
	stdout, _, err := runCLI(t, `{"a":[1,2]}`, "--pretty")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}\n", stdout)
}

func TestEndToEnd_MinifyIsDefault(t *testing.T) {
	stdout, _, err := runCLI(t, "{\n  \"a\" : [ 1, 2 ]\n}\n")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":[1,2]}\n", stdout)
}

func TestEndToEnd_PreservesKeyOrderByDefault(t *testing.T) {
	stdout, _, err := runCLI(t, `{"b":1,"a":2}`)
	require.NoError(t, err)
	assert.Equal(t, "{\"b\":1,\"a\":2}\n", stdout)
}

func TestEndToEnd_SortKeys(t *testing.T) {
	stdout, _, err := runCLI(t, `{"b":1,"a":2}`, "--sort")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":2,\"b\":1}\n", stdout)
}

func TestEndToEnd_KeyCase(t *testing.T) {
	stdout, _, err := runCLI(t, `{"user_name":{"home_town":"x"}}`, "--key-case", "camel")
	require.NoError(t, err)
	assert.Equal(t, "{\"userName\":{\"homeTown\":\"x\"}}\n", stdout)
}

func TestEndToEnd_BigNumbersSurviveVerbatim(t *testing.T) {
	literal := "123456789012345678901234567890.000001"
	stdout, _, err := runCLI(t, literal, "--big-numbers")
	require.NoError(t, err)
	assert.Equal(t, literal+"\n", stdout)
}

func TestEndToEnd_CheckValid(t *testing.T) {
	stdout, stderr, err := runCLI(t, `[1, 2, 3]`, "--check")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "valid JSON")
}

func TestEndToEnd_CheckInvalidReportsPosition(t *testing.T) {
	_, stderr, err := runCLI(t, "{\n\"a\": 01\n}", "--check")
	require.Error(t, err)
	assert.Contains(t, stderr, "Invalid number")
	assert.Contains(t, stderr, "line 2")
}

func TestEndToEnd_TrailingContentFails(t *testing.T) {
	_, stderr, err := runCLI(t, `1 2`, "--check")
	require.Error(t, err)
	assert.Contains(t, stderr, "Trailing content")
}

func TestEndToEnd_FileInputAndOutput(t *testing.T) {
	tempDir := t.TempDir()

	inFile := filepath.Join(tempDir, "in.json")
	require.NoError(t, os.WriteFile(inFile, []byte(`{"n": [true, null]}`), 0644))
	outFile := filepath.Join(tempDir, "out.json")

	_, _, err := runCLI(t, "", "-i", inFile, "-o", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "{\"n\":[true,null]}\n", string(data))
}

func TestEndToEnd_MissingInputFile(t *testing.T) {
	_, stderr, err := runCLI(t, "", "-i", "/no/such/file.json")
	require.Error(t, err)
	assert.Contains(t, stderr, "not found")
}

func TestEndToEnd_MaxDepthFlag(t *testing.T) {
	_, stderr, err := runCLI(t, `[[[[1]]]]`, "--max-depth", "3", "--check")
	require.Error(t, err)
	assert.Contains(t, stderr, "nested too deeply")
}

func TestEndToEnd_ConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	cfgFile := filepath.Join(tempDir, "gojson.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("format:\n  pretty: true\n  indent: \"\\t\"\n"), 0644))

	stdout, _, err := runCLI(t, `[1]`, "--config", cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "[\n\t1\n]\n", stdout)
}
