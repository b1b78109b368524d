package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/AlexanderYastrebov/ed25519core/field"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

// cpuFeatures are the capabilities that decide which field backend a target
// could use.
type cpuFeatures struct {
	AVX2       bool
	BMI2       bool
	AVX512F    bool
	AVX512VL   bool
	AVX512IFMA bool
	ASIMD      bool
}

func detectCPUFeatures() cpuFeatures {
	return cpuFeatures{
		AVX2:       cpu.X86.HasAVX2,
		BMI2:       cpu.X86.HasBMI2,
		AVX512F:    cpu.X86.HasAVX512F,
		AVX512VL:   cpu.X86.HasAVX512VL,
		AVX512IFMA: cpu.X86.HasAVX512IFMA,
		ASIMD:      cpu.ARM64.HasASIMD,
	}
}

// bestBackend returns the widest backend the CPU could run and the build
// setting that selects it.
func bestBackend(goarch string, f cpuFeatures) (backend, setting string) {
	switch goarch {
	case "amd64":
		switch {
		case f.AVX512F && f.AVX512VL && f.AVX512IFMA:
			return "fe43", "GOAMD64=v4"
		case f.AVX2 && f.BMI2:
			return "fe2526", "GOAMD64=v3"
		}
	case "arm64":
		return "fe64", "GOARCH=arm64"
	}
	return "fe51", ""
}

func newBackendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backend",
		Short: "Show the compiled field backend and the CPU capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackend(cmd.OutOrStdout(), runtime.GOARCH, detectCPUFeatures())
		},
	}
}

func runBackend(w io.Writer, goarch string, f cpuFeatures) error {
	best, setting := bestBackend(goarch, f)

	logrus.WithFields(logrus.Fields{
		"goarch":  goarch,
		"backend": field.Backend,
	}).Debugf("CPU features: %+v", f)

	fmt.Fprintf(w, "backend: %s\n", field.Backend)
	fmt.Fprintf(w, "goarch:  %s\n", goarch)
	fmt.Fprintf(w, "cpu:     avx2=%t bmi2=%t avx512f=%t avx512vl=%t avx512ifma=%t asimd=%t\n",
		f.AVX2, f.BMI2, f.AVX512F, f.AVX512VL, f.AVX512IFMA, f.ASIMD)

	if best != field.Backend && setting != "" {
		fmt.Fprintf(w, "hint:    this CPU can run %s, rebuild with %s\n", best, setting)
	}
	return nil
}
