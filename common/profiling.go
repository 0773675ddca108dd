package common

import (
	"os"
	"path/filepath"
	"runtime/trace"
	"testing"

	"github.com/pkg/profile"
)

// ProfileTrace runs the benchmark body with optional CPU profiling and
// execution tracing, writing the output under profiles/<benchmark name>.
func ProfileTrace(b *testing.B, profiled, traced bool, fn func()) {
	if traced {
		if err := os.MkdirAll("profiles", 0755); err != nil {
			b.Fatal(err)
		}
		f, err := os.Create(filepath.Join("profiles", b.Name()+"-trace.out"))
		if err != nil {
			b.Fatal(err)
		}
		defer f.Close()

		if err := trace.Start(f); err != nil {
			b.Fatal(err)
		}
		defer trace.Stop()
	}

	if profiled {
		p := profile.Start(
			profile.ProfilePath(filepath.Join("profiles", b.Name())),
			profile.Quiet,
		)
		defer p.Stop()
	}

	b.StartTimer()
	defer b.StopTimer()

	fn()
}
