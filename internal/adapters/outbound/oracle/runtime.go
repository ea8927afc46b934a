package oracle

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/hbuddenberg/tuxido/internal/domain"
)

const probeTimeout = 3 * time.Second

// Oracle discovers the runtime environment the validator operates in:
// the Python interpreter version and the installed Textual framework
// version, if any. Discovery runs once at startup; the resulting
// RuntimeContext is then threaded through the pipeline.
type Oracle struct {
	interpreter string
}

type Option func(*Oracle)

func WithInterpreter(path string) Option {
	return func(o *Oracle) { o.interpreter = path }
}

func New(opts ...Option) *Oracle {
	o := &Oracle{interpreter: "python3"}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Discover builds a RuntimeContext for the given tool version. Probe
// failures degrade to "unknown" runtime and a nil framework rather
// than erroring; validation must work without Python installed, only
// the sandbox layer needs it.
func (o *Oracle) Discover(version string) domain.RuntimeContext {
	rc := domain.RuntimeContext{
		Version:  version,
		Runtime:  "unknown",
		Platform: runtime.GOOS,
	}

	if v, ok := o.probe("-c", "import sys; print('.'.join(map(str, sys.version_info[:3])))"); ok {
		rc.Runtime = "python " + v
	}

	if v, ok := o.probe("-c", "import textual; print(textual.__version__)"); ok {
		fw := "textual " + v
		rc.Framework = &fw
	}

	return rc
}

func (o *Oracle) probe(args ...string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, o.interpreter, args...).Output()
	if err != nil {
		return "", false
	}

	v := strings.TrimSpace(string(out))
	if v == "" {
		return "", false
	}
	return v, true
}
