package facade

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/leeforge/logbind/logger"
	"github.com/leeforge/logbind/report"
)

// GetLoggerFor returns a logger named after v's dynamic type, package path
// included. When the detect-name-mismatch setting is on and the type belongs
// to a different package than the caller, a mismatch diagnostic is reported;
// the logger is returned either way.
func (r *Resolver) GetLoggerFor(v any) logger.Logger {
	return r.getLoggerFor(v)
}

func (r *Resolver) getLoggerFor(v any) logger.Logger {
	name, typePkg := nameForType(v)
	l := r.GetLogger(name)

	if r.settings.DetectNameMismatch && typePkg != "" {
		if caller := callerPackage(); caller != "" && caller != typePkg {
			report.Reportf("detected logger name mismatch: logger named for type in %q, requested from %q", typePkg, caller)
		}
	}
	return l
}

// nameForType derives a logger name from v's dynamic type. Pointers are
// dereferenced so *T and T name the same logger. The second return is the
// type's package path, empty for builtins and unnamed types.
func nameForType(v any) (name, pkgPath string) {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil", ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() != "" && t.Name() != "" {
		return t.PkgPath() + "." + t.Name(), t.PkgPath()
	}
	return t.String(), ""
}

var facadePkgPath = reflect.TypeOf(Resolver{}).PkgPath()

// callerPackage walks the stack past this package's own frames and returns
// the package path of the first external caller.
func callerPackage() string {
	var pcs [8]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if pkg := packageOf(frame.Function); pkg != "" && pkg != facadePkgPath {
			return pkg
		}
		if !more {
			return ""
		}
	}
}

// packageOf extracts the package path from a fully qualified function name
// such as "example.com/mod/pkg.(*T).Method".
func packageOf(fn string) string {
	if fn == "" {
		return ""
	}
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return ""
	}
	return fn[:slash+1+dot]
}
