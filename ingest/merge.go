package ingest

import (
	"errors"

	"github.com/sutt0n/depin-open-droneid/wire"
)

// errorKind returns a metrics-friendly label for a wire-layer error,
// or "other" for anything that isn't a *wire.ParseError (which should
// never happen below the ingest layer per spec.md §2.2, but metrics
// labels must not panic on the unexpected).
func errorKind(err error) string {
	var pe *wire.ParseError
	if errors.As(err, &pe) {
		return pe.Kind.String()
	}
	return "other"
}
