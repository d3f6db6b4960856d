package dto

// NumberSeriesURI binds the :schema path parameter.
type NumberSeriesURI struct {
	Schema string `uri:"schema" binding:"required,schema_name"`
}

// NumberSeriesResponse carries the resolved default series of a schema.
type NumberSeriesResponse struct {
	Schema       string `json:"schema"`
	NumberSeries string `json:"numberSeries"`
}
