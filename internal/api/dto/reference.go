package dto

type StringTypeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ReferenceResponse struct {
	Significance string               `json:"significance"`
	Birds        []BirdResponse       `json:"birds"`
	StringTypes  []StringTypeResponse `json:"string_types"`
}
