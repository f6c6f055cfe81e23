package docstore

import "encoding/json"

// GetResponse is the result of a document get.
type GetResponse struct {
	// Collection is the collection the document was read from.
	Collection string `json:"_collection,omitempty"`
	// ID is the document id.
	ID string `json:"_id"`
	// Version is the stored document version, zero when absent.
	Version int64 `json:"_version,omitempty"`
	// Found reports whether the document exists. A 404 with a well-formed
	// body yields Found=false rather than an error when 404 is ignored.
	Found bool `json:"found"`
	// Source is the raw document body, nil when Found is false or the read
	// excluded it.
	Source json.RawMessage `json:"_source,omitempty"`
}

// decodeGetResponse reads a GetResponse from a response entity.
func decodeGetResponse(dec Decoder) (*GetResponse, error) {
	var resp GetResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
