package model

import (
	"net/http"
	"path"
	"strings"
)

// Area is a privileged backend namespace forwarded verbatim.
type Area string

const (
	AreaAdmin      Area = "admin"
	AreaSuperAdmin Area = "super-admin"
)

const glampsPrefix = "/glamps"

// Endpoint joins area and the caller supplied path. The path is cleaned
// first so ".." can never climb out of the area.
func (a Area) Endpoint(rest string) string {
	cleaned := path.Clean("/" + strings.TrimPrefix(rest, "/"))
	if cleaned == "/" {
		return "/" + string(a)
	}

	return "/" + string(a) + cleaned
}

// Forwardable lists the methods the passthrough accepts.
func Forwardable(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}

	return false
}

// TouchesGlamps reports whether a forwarded call may have changed the
// glamp catalogue.
func TouchesGlamps(area Area, method, endpoint string) bool {
	if method == http.MethodGet {
		return false
	}

	rest := strings.TrimPrefix(endpoint, "/"+string(area))

	return rest == glampsPrefix || strings.HasPrefix(rest, glampsPrefix+"/")
}
