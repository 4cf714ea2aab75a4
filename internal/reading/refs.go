package reading

import (
	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/ids"
	"github.com/willabides/inkml/internal/model"
)

// refLookup classifies the outcome of resolving a contextRef/brushRef
// attribute against an already-resolved Definitions table.
type refLookup int

const (
	refAbsent   refLookup = iota // no such attribute on the element
	refOK                        // found
	refExternal                  // present, non-local, assume_local_refs is false: warn only, never drop
	refMiss                      // present, local (or assumed local), not found: warn; drop iff requireRefs
)

func classifyRef(ref string, hasRef bool, assumeLocalRefs bool) refLookup {
	if !hasRef {
		return refAbsent
	}
	if ids.IsLocal(ref) || assumeLocalRefs {
		return refOK // caller still must perform the map lookup
	}
	return refExternal
}

func resolveContextRef(ref string, hasRef bool, defs *model.Definitions, assumeLocalRefs bool, sink diag.Sink) (*model.Context, refLookup) {
	lk := classifyRef(ref, hasRef, assumeLocalRefs)
	if lk != refOK {
		if lk == refExternal {
			sink.Warn("inkml: external context reference %q not supported", ref)
		}
		return nil, lk
	}
	if ctx, ok := defs.Contexts[ids.ToLocal(ref)]; ok {
		return ctx, refOK
	}
	sink.Warn("inkml: context reference %q not found", ref)
	return nil, refMiss
}

func resolveBrushRef(ref string, hasRef bool, defs *model.Definitions, assumeLocalRefs bool, sink diag.Sink) (*model.Brush, refLookup) {
	lk := classifyRef(ref, hasRef, assumeLocalRefs)
	if lk != refOK {
		if lk == refExternal {
			sink.Warn("inkml: external brush reference %q not supported", ref)
		}
		return nil, lk
	}
	if b, ok := defs.Brushes[ids.ToLocal(ref)]; ok {
		return b, refOK
	}
	sink.Warn("inkml: brush reference %q not found", ref)
	return nil, refMiss
}
