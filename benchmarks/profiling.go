package benchmarks

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// startProfiling profiles the CPU to cpuProfPath until the returned function is called
func startProfiling(cpuProfPath string) (func(), error) {
	if cpuProfPath == "" {
		return func() {}, nil
	}
	f, err := os.Create(cpuProfPath)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}
