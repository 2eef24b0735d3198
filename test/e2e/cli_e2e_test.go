package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const (
	fibonacciOutput = "0\n1\n1\n2\n3\n5\n8\n13\n21\n34\n55\nDone!\n"
	ackermannOutput = "5\n13\n29\n61\n125\n253\n509\n1021\n2045\n4093\n8189\n16381\nDone!\n"
)

// buildBinary builds ./cmd/<name> from the module root into a temp dir.
func buildBinary(t *testing.T, name string) string {
	t.Helper()
	binName := name
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	// go test runs with the package directory as CWD.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/"+name)
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build %s: %v", name, err)
	}
	return binPath
}

func run(t *testing.T, bin string, env []string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	default:
		t.Fatalf("running %s: %v", bin, err)
	}
	return out.String(), errOut.String(), code
}

// TestCLI_E2E verifies each built binary prints exactly its values and the
// completion marker.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	tests := []struct {
		name string
		want string
	}{
		{"fib", fibonacciOutput},
		{"fibrecord", fibonacciOutput},
		{"ackermann", ackermannOutput},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			bin := buildBinary(t, tt.name)

			stdout, stderr, code := run(t, bin, []string{"NO_COLOR=1"})
			if code != 0 {
				t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}

			// Debug logging only affects stderr.
			stdout, stderr, code = run(t, bin, []string{"RECUR_LOG_LEVEL=debug"}, "-log-format", "json")
			if code != 0 || stdout != tt.want {
				t.Errorf("debug run: code %d, stdout %q", code, stdout)
			}
			if !strings.Contains(stderr, `"run complete"`) {
				t.Errorf("debug run should log the summary on stderr, got:\n%s", stderr)
			}
		})
	}
}

func TestCLI_Flags(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	bin := buildBinary(t, "fib")

	tests := []struct {
		name       string
		args       []string
		env        []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "version", args: []string{"--version"}, wantStdout: "fib dev\n"},
		{name: "help", args: []string{"--help"}, wantStderr: "Usage: fib"},
		{name: "unknown flag", args: []string{"-n", "10"}, wantCode: 4, wantStderr: "Error:"},
		{name: "positional argument", args: []string{"10"}, wantCode: 4, wantStderr: "takes no arguments"},
		{name: "bad env level", env: []string{"RECUR_LOG_LEVEL=chatty"}, wantCode: 4, wantStderr: "invalid log level"},
		{name: "metrics file", args: []string{"-metrics-file", filepath.Join(t.TempDir(), "fib.prom")}, wantStdout: fibonacciOutput},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := run(t, bin, tt.env, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstderr: %s", code, tt.wantCode, stderr)
			}
			if stdout != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr should contain %q, got:\n%s", tt.wantStderr, stderr)
			}
		})
	}
}
