package dto

type ProfileResponse struct {
	ProfileID int           `json:"profile_id"`
	Name      string        `json:"name"`
	Birth     BirthResponse `json:"birth"`
}

type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

type ProfileChartResponse struct {
	Profile ProfileResponse `json:"profile"`
	Chart   ChartResponse   `json:"chart"`
	Reading ReadingResponse `json:"reading"`
}

type ListProfileChartsResponse struct {
	Charts []ProfileChartResponse `json:"charts"`
}
