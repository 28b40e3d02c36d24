package handlers

import (
	"jyotish-service/internal/api/dto"
	"jyotish-service/internal/catalog"
	"jyotish-service/internal/domain"
)

func toBirthResponse(b domain.BirthData) dto.BirthResponse {
	return dto.BirthResponse{
		Date:      b.DateString(),
		Time:      b.ClockString(),
		Timezone:  b.Zone,
		Latitude:  b.Coordinates.Lat,
		Longitude: b.Coordinates.Lon,
	}
}

func toPositionResponse(p domain.Position) dto.PositionResponse {
	return dto.PositionResponse{
		Tropical: p.Tropical,
		Sidereal: p.Sidereal,
		Sign:     p.Sign.String(),
	}
}

func toChartResponse(c *domain.Chart) dto.ChartResponse {
	return dto.ChartResponse{
		Birth:      toBirthResponse(c.Birth),
		UTC:        c.UTC,
		JulianDay:  c.JulianDay,
		Ayanamsa:   c.Ayanamsa,
		Sun:        toPositionResponse(c.Sun),
		Moon:       toPositionResponse(c.Moon),
		Ascendant:  toPositionResponse(c.Ascendant),
		Elongation: c.Elongation,
		Nakshatra:  c.Nakshatra.String(),
		Pada:       c.Pada,
		Paksha:     c.Paksha.String(),
	}
}

func toSignReadingResponse(s domain.SignReading) dto.SignReadingResponse {
	return dto.SignReadingResponse{
		Sign:        s.Sign.String(),
		Element:     s.Element,
		Description: s.Description,
	}
}

func toReadingResponse(r domain.Reading) dto.ReadingResponse {
	return dto.ReadingResponse{
		Sun:       toSignReadingResponse(r.Sun),
		Moon:      toSignReadingResponse(r.Moon),
		Ascendant: toSignReadingResponse(r.Ascendant),
		Bird: dto.BirdResponse{
			Name:        r.Bird.Name,
			Sanskrit:    r.Bird.Sanskrit,
			Element:     r.Bird.Element,
			Description: r.Bird.Description,
		},
		StringType:        r.StringType,
		StringDescription: r.StringDescription,
		Summary:           r.Summary,
	}
}

func toProfileResponse(p *domain.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ProfileID: p.ProfileID,
		Name:      p.Name,
		Birth:     toBirthResponse(p.Birth),
	}
}

func toReferenceResponse(cat *catalog.Catalog) dto.ReferenceResponse {
	birds := cat.Birds()
	types := cat.StringTypes()

	res := dto.ReferenceResponse{
		Significance: cat.Significance(),
		Birds:        make([]dto.BirdResponse, 0, len(birds)),
		StringTypes:  make([]dto.StringTypeResponse, 0, len(types)),
	}
	for _, b := range birds {
		res.Birds = append(res.Birds, dto.BirdResponse{
			Name:        b.Name,
			Sanskrit:    b.Sanskrit,
			Element:     b.Element,
			Description: b.Description,
		})
	}
	for _, st := range types {
		res.StringTypes = append(res.StringTypes, dto.StringTypeResponse{
			Name:        st.Name,
			Description: st.Description,
		})
	}

	return res
}
