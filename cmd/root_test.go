package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xen-tools/gen-policy/internal/policy"
	"github.com/xen-tools/gen-policy/version"
)

// execute runs the root command with the given stdin and arguments and
// returns what it wrote to stdout.
func execute(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		configPath, logLevel, logFile = "", "", ""
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	var out bytes.Buffer
	rootCmd.SetIn(bytes.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_NoArgs(t *testing.T) {
	in := []byte{0x8c, 0xff, 0x7c, 0xf9, 0x00, 0x01}
	out, err := execute(t, in)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != policy.Render(in) {
		t.Errorf("stdout differs from rendered source:\n%s", out)
	}
	if strings.Contains(out, "level=") {
		t.Errorf("log record leaked onto stdout:\n%s", out)
	}
}

func TestRoot_EmptyInput(t *testing.T) {
	out, err := execute(t, nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, "= {\n\n};\n") {
		t.Errorf("expected empty initializer:\n%s", out)
	}
	if !strings.Contains(out, "xsm_flask_init_policy_size = 0;") {
		t.Errorf("expected size 0:\n%s", out)
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	if _, err := execute(t, nil, "policy.bin"); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, []byte{0x01}, "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "invalid logging level") {
		t.Errorf("expected invalid level error, got %v", err)
	}
}

func TestRoot_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "gen-policy.log")
	in := bytes.Repeat([]byte{0x42}, 2048)

	out, err := execute(t, in, "--log-level", "info", "--log-file", logPath)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != policy.Render(in) {
		t.Error("logging flags changed the generated source")
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	logs := string(data)
	for _, want := range []string{"msg=\"policy embedded\"", "bytes=2048", "size=\"2.0 kB\"", "run="} {
		if !strings.Contains(logs, want) {
			t.Errorf("log missing %s:\n%s", want, logs)
		}
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "from-config.log")
	cfgPath := filepath.Join(dir, "gen-policy.yaml")
	cfg := "logging:\n  level: debug\n  path: " + logPath + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, []byte{0x01, 0x02, 0x03}, "--config", cfgPath); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("config log path not used: %v", err)
	}
	if !strings.Contains(string(data), "bytes=3") {
		t.Errorf("unexpected log content:\n%s", data)
	}
}

func TestRoot_MissingConfig(t *testing.T) {
	_, err := execute(t, nil, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "version")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "gen-policy "+version.Version+"\n" {
		t.Errorf("unexpected version output %q", out)
	}
}
