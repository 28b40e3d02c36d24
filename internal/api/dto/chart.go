package dto

import "time"

type ChartRequest struct {
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Timezone  string   `json:"timezone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Place     string   `json:"place"`
	Seed      *uint64  `json:"seed"`
}

type BirthResponse struct {
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PositionResponse struct {
	Tropical float64 `json:"tropical"`
	Sidereal float64 `json:"sidereal"`
	Sign     string  `json:"sign"`
}

type ChartResponse struct {
	Birth      BirthResponse    `json:"birth"`
	UTC        time.Time        `json:"utc"`
	JulianDay  float64          `json:"julian_day"`
	Ayanamsa   float64          `json:"ayanamsa"`
	Sun        PositionResponse `json:"sun"`
	Moon       PositionResponse `json:"moon"`
	Ascendant  PositionResponse `json:"ascendant"`
	Elongation float64          `json:"elongation"`
	Nakshatra  string           `json:"nakshatra"`
	Pada       int              `json:"pada"`
	Paksha     string           `json:"paksha"`
}

type SignReadingResponse struct {
	Sign        string `json:"sign"`
	Element     string `json:"element"`
	Description string `json:"description"`
}

type BirdResponse struct {
	Name        string `json:"name"`
	Sanskrit    string `json:"sanskrit"`
	Element     string `json:"element"`
	Description string `json:"description"`
}

type ReadingResponse struct {
	Sun               SignReadingResponse `json:"sun"`
	Moon              SignReadingResponse `json:"moon"`
	Ascendant         SignReadingResponse `json:"ascendant"`
	Bird              BirdResponse        `json:"bird"`
	StringType        string              `json:"string_type"`
	StringDescription string              `json:"string_description"`
	Summary           string              `json:"summary"`
}

type CastChartResponse struct {
	Chart   ChartResponse   `json:"chart"`
	Reading ReadingResponse `json:"reading"`
}
