// Package metrics serves the statsviz live runtime dashboard at
// /debug/statsviz.
package metrics

import (
	"net/http"

	"github.com/arl/statsviz"
)

func Serve(addr string) error {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return err
	}
	return http.ListenAndServe(addr, mux)
}
