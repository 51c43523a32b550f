package dto

import (
	"encoding/json"
	"glamp/internal/domains/admin/model"
	"net/url"
)

type ForwardRequest struct {
	Area   model.Area
	Method string
	Path   string
	Query  url.Values
	Body   json.RawMessage
}
