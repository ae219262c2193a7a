package models

import (
	"bytes"
	"encoding/json"
)

// OMDBLookup is the decoded control portion of an OMDB API response.
// Only the fields the fetcher inspects are declared; the remaining payload
// is carried separately as passthrough metadata.
type OMDBLookup struct {
	// Response reports whether the lookup succeeded. The provider encodes it
	// as the strings "True"/"False"; test doubles sometimes use JSON booleans,
	// so both forms are accepted.
	Response OMDBBool `json:"Response"`

	// Error is the provider's failure message. Only present when Response is
	// false (e.g. "Movie not found!" or "Invalid API key!").
	Error string `json:"Error"`

	// Title is the canonical display title of the matched movie.
	Title string `json:"Title"`

	// Plot is the plot text in the length requested by the "plot" query
	// parameter (short or full).
	Plot string `json:"Plot"`
}

// OMDBBool is a boolean that unmarshals from either a JSON bool or the
// provider's "True"/"False" string encoding. Absent or unrecognized values
// decode as false.
type OMDBBool bool

// UnmarshalJSON implements [json.Unmarshaler].
func (b *OMDBBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*b = OMDBBool(asBool)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*b = asString == "True" || asString == "true"
		return nil
	}

	*b = false
	return nil
}
