package weathericons

import (
	"errors"
	"fmt"
	"strings"
)

// Backend selects which renderers are considered when probing.
type Backend string

// The supported backend selection modes.
const (
	// BackendAuto prefers the external converter and falls back to the native renderer.
	BackendAuto     Backend = "auto"
	BackendExternal Backend = "external"
	BackendNative   Backend = "native"
)

// ErrNoBackend is returned when none of the candidate renderers can be used.
var ErrNoBackend = errors.New("no SVG renderer available")

// Remediation is printed when no renderer backend could be found.
const Remediation = `=========================================
ERROR: SVG backend missing.
To generate transparent PNG icons during build, you must install an SVG renderer:
   Option A: sudo apt-get install librsvg2-bin
   Option B: use the built-in renderer (-backend=auto or -backend=native, built without -tags nonative)
=========================================`

// Attempt records why a candidate renderer was rejected.
type Attempt struct {
	Name string
	Err  error
}

// BackendError lists every renderer that was probed without success.
type BackendError struct {
	Attempts []Attempt
}

func (e *BackendError) Error() string {
	if len(e.Attempts) == 0 {
		return ErrNoBackend.Error()
	}
	reasons := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		reasons = append(reasons, fmt.Sprintf("%s: %v", a.Name, a.Err))
	}
	return fmt.Sprintf("%v (%s)", ErrNoBackend, strings.Join(reasons, "; "))
}

// Unwrap makes errors.Is(err, ErrNoBackend) hold.
func (e *BackendError) Unwrap() error { return ErrNoBackend }

// ParseBackend validates a backend selection mode. The empty string means BackendAuto.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendAuto, nil
	case BackendAuto, BackendExternal, BackendNative:
		return b, nil
	default:
		return "", fmt.Errorf("unsupported backend %q, expected one of: auto, external, native", s)
	}
}

// Candidates returns the renderers to probe for the given mode, in order of preference.
func Candidates(mode Backend, external *ExternalRenderer) []Renderer {
	if external == nil {
		external = &ExternalRenderer{Command: []string{DefaultConverter}}
	}
	switch mode {
	case BackendExternal:
		return []Renderer{external}
	case BackendNative:
		return []Renderer{&NativeRenderer{}}
	default:
		return []Renderer{external, &NativeRenderer{}}
	}
}

// Probe returns the first available renderer. It is meant to be called
// once per run, so every icon is produced by the same backend.
func Probe(candidates ...Renderer) (Renderer, error) {
	berr := &BackendError{}
	for _, r := range candidates {
		err := r.Available()
		if err == nil {
			return r, nil
		}
		berr.Attempts = append(berr.Attempts, Attempt{Name: r.Name(), Err: err})
	}
	return nil, berr
}
