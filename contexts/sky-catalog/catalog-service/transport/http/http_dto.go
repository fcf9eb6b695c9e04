package http

// Write requests use pointer fields: replace validates that the required
// fields are present, partial update touches only the fields sent. An
// owner value in the payload is never decoded; ownership always comes
// from the authenticated caller.

type GalaxyRequest struct {
	Name              *string  `json:"name"`
	NameOrigin        *string  `json:"name_origin"`
	GalaxyType        *string  `json:"galaxy_type"`
	Distance          *float64 `json:"distance"`
	ApparentMagnitude *float64 `json:"apparent_magnitude"`
	Size              *float64 `json:"size"`
	Notes             *string  `json:"notes"`
	Constellation     *uint64  `json:"constellation"`
}

type PostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type CommentRequest struct {
	Content *string `json:"content"`
	Post    *uint64 `json:"post"`
}

type GalaxyImageRequest struct {
	Galaxy    *uint64 `json:"galaxy"`
	Image     *string `json:"image"`
	ImagePPOI *string `json:"image_ppoi"`
}

type PostImageRequest struct {
	Post      *uint64 `json:"post"`
	Image     *string `json:"image"`
	ImagePPOI *string `json:"image_ppoi"`
}
