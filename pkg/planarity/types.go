package planarity

import "fmt"

// StatusSuccess is the application-level success sentinel in response
// bodies. HTTP status and this field are independent signals; both must
// hold for a result to count as successful.
const StatusSuccess = "success"

// Result is the analysis endpoint's decoded response body. Error responses
// reuse the same shape with only Error set, so every response decodes into
// this one type.
type Result struct {
	Status   string `json:"status"`
	Title    string `json:"title"`
	IsPlanar bool   `json:"is_planar"`

	// Set only when the graph is non-planar.
	KuratowskiType  string     `json:"kuratowski_type,omitempty"`
	KuratowskiEdges []EdgePair `json:"kuratowski_edges,omitempty"`

	// Base64 payloads with no data-URI prefix. Subdivision and minor are
	// empty for planar graphs.
	ImageOriginal    string `json:"image_original,omitempty"`
	ImageSubdivision string `json:"image_subdivision,omitempty"`
	ImageMinor       string `json:"image_minor,omitempty"`

	Error string `json:"error,omitempty"`
}

// EdgePair is one highlighted counterexample edge [u, v]. Node IDs keep
// whatever JSON type the submitted graph used.
type EdgePair [2]any

func (e EdgePair) String() string {
	return fmt.Sprintf("%v-%v", e[0], e[1])
}

// Analysis pairs a decoded result with its transport-level outcome.
type Analysis struct {
	StatusCode int
	Result     Result
}

// HTTPSuccess reports whether the HTTP status was 2xx.
func (a *Analysis) HTTPSuccess() bool {
	return a.StatusCode >= 200 && a.StatusCode < 300
}

// OK reports whether both success signals hold: a 2xx HTTP status and the
// body's status sentinel.
func (a *Analysis) OK() bool {
	return a.HTTPSuccess() && a.Result.Status == StatusSuccess
}
