package docstore

// PingRequest checks that the remote store is reachable. It carries no
// parameters and always validates.
type PingRequest struct{}

// Validate implements Validatable.
func (PingRequest) Validate() error { return nil }

// GetRequest retrieves a single document by id.
type GetRequest struct {
	// Collection is the collection holding the document.
	Collection string `json:"collection" validate:"required"`
	// ID is the document id.
	ID string `json:"id" validate:"required"`
	// Routing selects the shard the document lives on.
	Routing string `json:"routing,omitempty"`
	// Preference pins the request to a node or shard copy.
	Preference string `json:"preference,omitempty"`
	// Refresh forces a refresh before the read.
	Refresh bool `json:"refresh,omitempty"`
	// Version, when positive, requires the stored document to have this version.
	Version int64 `json:"version,omitempty" validate:"gte=0"`
}

// NewGetRequest creates a get request for a document id in a collection.
func NewGetRequest(collection, id string) *GetRequest {
	return &GetRequest{Collection: collection, ID: id}
}

// Validate implements Validatable.
func (r *GetRequest) Validate() error {
	if ve := validateStruct(r); ve != nil {
		return ve
	}
	return nil
}
