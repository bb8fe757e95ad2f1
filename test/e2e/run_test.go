package e2e

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestE2E runs the cfront binary over every .c file in testdata/.
// For each file:
//  1. <name>.tokens, if present, is compared with `cfront lex`
//  2. <name>.tree, if present, is compared with `cfront parse`
//  3. <name>.err, if present, holds "exit N" on its first line and, on each
//     following line, text that stderr of `cfront parse` must contain
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.c")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .c test files found in testdata/")
	}

	bin := buildCfront(t)

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".c")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, bin, name)
		})
	}
}

// buildCfront compiles cmd/cfront into a temp directory.
func buildCfront(t *testing.T) string {
	t.Helper()

	goTool, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go tool not found, skipping E2E tests")
	}

	bin := filepath.Join(t.TempDir(), "cfront")
	cmd := exec.Command(goTool, "build", "-o", bin, "../../cmd/cfront")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("go build failed:\n%s\n%v", out, err)
	}
	return bin
}

// runE2ETest checks every expectation file present for name.
func runE2ETest(t *testing.T, bin, name string) {
	t.Helper()

	checked := false
	for _, c := range []struct{ cmd, ext string }{
		{"lex", ".tokens"},
		{"parse", ".tree"},
	} {
		want, err := os.ReadFile(filepath.Join("testdata", name+c.ext))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		checked = true

		code, stdout, stderr := cfront(t, bin, c.cmd, name+".c")
		if code != 0 {
			t.Fatalf("cfront %s exited %d:\n%s", c.cmd, code, stderr)
		}
		if stdout != string(want) {
			t.Errorf("cfront %s output mismatch:\ngot:\n%s\nwant:\n%s", c.cmd, stdout, want)
		}
	}

	errSpec, err := os.ReadFile(filepath.Join("testdata", name+".err"))
	if err == nil {
		checked = true
		wantCode, wantStderr := parseErrSpec(t, errSpec)

		code, stdout, stderr := cfront(t, bin, "parse", name+".c")
		if code != wantCode {
			t.Errorf("exit %d, want %d", code, wantCode)
		}
		if stdout != "" {
			t.Errorf("stdout not empty on failure:\n%s", stdout)
		}
		for _, want := range wantStderr {
			if !strings.Contains(stderr, want) {
				t.Errorf("stderr lacks %q:\n%s", want, stderr)
			}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		t.Fatal(err)
	}

	if !checked {
		t.Fatalf("no .tokens, .tree or .err file for %s.c", name)
	}
}

// cfront runs the binary inside testdata so positions show bare file names.
func cfront(t *testing.T, bin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(bin, append(args, "--no-color")...)
	cmd.Dir = "testdata"
	cmd.Env = append(os.Environ(), "CFRONT_CONFIG=")
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	default:
		t.Fatalf("running cfront: %v", err)
	}
	return code, outBuf.String(), errBuf.String()
}

func parseErrSpec(t *testing.T, spec []byte) (int, []string) {
	t.Helper()

	sc := bufio.NewScanner(bytes.NewReader(spec))
	if !sc.Scan() {
		t.Fatal("empty .err file")
	}
	codeStr, ok := strings.CutPrefix(sc.Text(), "exit ")
	if !ok {
		t.Fatalf(".err file must start with \"exit N\", got %q", sc.Text())
	}
	code, err := strconv.Atoi(codeStr)
	if err != nil {
		t.Fatal(err)
	}

	var lines []string
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return code, lines
}
