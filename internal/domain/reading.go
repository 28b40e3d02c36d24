package domain

// SignReading pairs a placement with its element and role text.
type SignReading struct {
	Sign        Sign   `json:"sign"`
	Element     string `json:"element"`
	Description string `json:"description"`
}

type BirdReading struct {
	Name        string `json:"name"`
	Sanskrit    string `json:"sanskrit"`
	Element     string `json:"element"`
	Description string `json:"description"`
}

// Reading is the rendered interpretation of a Chart.
type Reading struct {
	Chart             Chart       `json:"chart"`
	Sun               SignReading `json:"sun"`
	Moon              SignReading `json:"moon"`
	Ascendant         SignReading `json:"ascendant"`
	Bird              BirdReading `json:"bird"`
	StringType        string      `json:"string_type"`
	StringDescription string      `json:"string_description"`
	Summary           string      `json:"summary"`
}
