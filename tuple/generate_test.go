package tuple_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestGeneratedCodeUpToDate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping code generation in short mode")
	}
	goCmd, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not available")
	}
	out := filepath.Join(t.TempDir(), "tuple_gen.go")
	cmd := exec.Command(goCmd, "run", "generate.go", "-n", "8", "-o", out)
	output, err := cmd.CombinedOutput()
	qt.Assert(t, qt.IsNil(err), qt.Commentf("output: %s", output))

	got, err := os.ReadFile(out)
	qt.Assert(t, qt.IsNil(err))
	want, err := os.ReadFile("tuple_gen.go")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(got), string(want)))
}
