package bootstraplayout

import (
	"embed"
	"io/fs"
)

//go:embed assets/bootstrap_layout_builder/*.css assets/bootstrap_layout_builder/*.js
var embeddedRuntimeAssets embed.FS

// RuntimeAssetsFS exposes the stylesheet and script of the
// bootstrap_layout_builder/base library so Go applications can serve them
// under the html renderer's asset prefix.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(bootstraplayout.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}
