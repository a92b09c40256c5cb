package facade

import (
	"strings"

	"github.com/leeforge/logbind/report"
)

// compatVersions are the backend compatibility tokens this façade accepts.
// All 1.6-series tokens are mutually compatible.
var compatVersions = []string{"1.6", "1.7"}

// versionSanityCheck reports, without failing, when the bound backend
// declares a compatibility token outside the accepted list. Backends that
// declare no token are not warned about; version declaration is opt-in.
func (r *Resolver) versionSanityCheck() {
	requested := r.bound.CompatVersion()
	if requested == "" {
		return
	}

	for _, v := range compatVersions {
		if strings.HasPrefix(requested, v) {
			return
		}
	}
	report.Reportf("backend %s declares compatibility version %s, which is not among %v",
		r.bound.Description(), requested, compatVersions)
}

// reportAmbiguity lists every candidate location when more than one backend
// registered. Resolution still proceeds with the first candidate in
// registration order; the listing is advisory.
func (r *Resolver) reportAmbiguity(locations []string) {
	if len(locations) <= 1 {
		return
	}

	report.Report("multiple logging backends registered")
	for _, loc := range locations {
		report.Reportf("found backend registration in [%s]", loc)
	}
}

// reportActualBinding names the chosen backend, but only when the choice was
// ambiguous and therefore worth announcing.
func (r *Resolver) reportActualBinding(locations []string) {
	if len(locations) > 1 {
		report.Reportf("actual binding is of type [%s]", r.bound.Description())
	}
}
