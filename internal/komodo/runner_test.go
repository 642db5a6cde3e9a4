package komodo_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"nucore/internal/komodo"
)

func script(dir, body string) string {
	path := filepath.Join(dir, "solver.sh")
	Expect(os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755)).To(Succeed())
	return path
}

var _ = Describe("Runner", func() {
	var dir, input string

	BeforeEach(func() {
		if runtime.GOOS == "windows" {
			Skip("shell scripts are not available")
		}
		dir = GinkgoT().TempDir()
		input = filepath.Join(dir, "case.inp")
	})

	It("returns the captured output of a normal run", func() {
		r := komodo.NewRunner(script(dir, "echo \"solving $1\"\necho 'KOMODO EXIT NORMALLY'\n"))
		out, err := r.Run(context.Background(), input)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Stdout).To(ContainSubstring("solving " + input))
		Expect(out.OutputPath).To(Equal(input + "_3d_power.out"))
	})

	It("fails when the exit marker is missing", func() {
		r := komodo.NewRunner(script(dir, "echo 'diverged'\n"))
		out, err := r.Run(context.Background(), input)
		var se *komodo.SolverError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Reason).To(Equal("solver did not exit properly"))
		Expect(err.Error()).To(ContainSubstring("diverged"))
		Expect(out.Stdout).To(Equal("diverged\n"))
	})

	It("fails when the solver writes to stderr", func() {
		r := komodo.NewRunner(script(dir, "echo 'KOMODO EXIT NORMALLY'\necho 'bad card' >&2\n"))
		_, err := r.Run(context.Background(), input)
		var se *komodo.SolverError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Output.Stderr).To(Equal("bad card\n"))
	})

	It("fails on a non-zero exit", func() {
		r := komodo.NewRunner(script(dir, "echo 'KOMODO EXIT NORMALLY'\nexit 3\n"))
		_, err := r.Run(context.Background(), input)
		Expect(err).To(MatchError(ContainSubstring("exited abnormally")))
	})

	It("fails when the executable cannot be started", func() {
		r := komodo.NewRunner(filepath.Join(dir, "missing"))
		_, err := r.Run(context.Background(), input)
		Expect(err).To(MatchError(ContainSubstring("could not run")))
	})
})
