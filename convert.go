package docstore

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/kbukum/docstore/transport"
)

// buildPingRequest maps a ping to HEAD /.
func buildPingRequest(*PingRequest) (*transport.Request, error) {
	return &transport.Request{
		Method: http.MethodHead,
		Path:   "/",
	}, nil
}

// buildGetRequest maps a get to GET /{collection}/_doc/{id}.
func buildGetRequest(r *GetRequest) (*transport.Request, error) {
	return &transport.Request{
		Method: http.MethodGet,
		Path:   docPath(r.Collection, r.ID),
		Query:  getParams(r),
	}, nil
}

// buildExistsRequest maps an existence check to HEAD /{collection}/_doc/{id}.
func buildExistsRequest(r *GetRequest) (*transport.Request, error) {
	return &transport.Request{
		Method: http.MethodHead,
		Path:   docPath(r.Collection, r.ID),
		Query:  getParams(r),
	}, nil
}

// docPath builds the document endpoint path with escaped segments.
func docPath(collection, id string) string {
	return "/" + url.PathEscape(collection) + "/_doc/" + url.PathEscape(id)
}

// getParams collects the optional get parameters, omitting defaults.
func getParams(r *GetRequest) map[string]string {
	params := make(map[string]string)
	if r.Routing != "" {
		params["routing"] = r.Routing
	}
	if r.Preference != "" {
		params["preference"] = r.Preference
	}
	if r.Refresh {
		params["refresh"] = "true"
	}
	if r.Version > 0 {
		params["version"] = strconv.FormatInt(r.Version, 10)
	}
	if len(params) == 0 {
		return nil
	}
	return params
}
