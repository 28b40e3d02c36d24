package services

import (
	"fmt"
	"jyotish-service/internal/catalog"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/ports"
)

const (
	unknown             = "Unknown"
	unknownSoul         = "Unknown soul description 🌌"
	unknownMind         = "Unknown mind description 🌌"
	unknownPersonality  = "Unknown personality description 🌌"
	unknownStringType   = "Unknown string type in scientific context 🔬"
	unknownBird         = "This bird embodies cosmic mysteries! 🌌"
	unknownSignTrait    = "mysterious soul 🌌"
	unknownMansionTrait = "cosmic wanderer ⭐"
	unknownPhrase       = "embody the universe's mysteries! 🌌🔮✨"
)

// Describe turns a chart into its reading. The only nondeterminism is the
// phrase choice, delegated to picker.
func Describe(chart domain.Chart, cat *catalog.Catalog, picker ports.Picker) domain.Reading {
	r := domain.Reading{
		Chart:     chart,
		Sun:       signReading(cat, chart.Sun.Sign, catalog.RoleSun, unknownSoul),
		Moon:      signReading(cat, chart.Moon.Sign, catalog.RoleMoon, unknownMind),
		Ascendant: signReading(cat, chart.Ascendant.Sign, catalog.RoleAscendant, unknownPersonality),
		Bird: domain.BirdReading{
			Name:        unknown,
			Sanskrit:    unknown,
			Element:     unknown,
			Description: unknownBird,
		},
		StringType:        unknown,
		StringDescription: unknownStringType,
	}

	if bird, ok := cat.RulingBird(chart.Paksha, chart.Nakshatra); ok {
		r.Bird = domain.BirdReading{
			Name:        bird.Name,
			Sanskrit:    orDefault(bird.Sanskrit, unknown),
			Element:     orDefault(bird.Element, unknown),
			Description: orDefault(bird.Description, unknownBird),
		}
	}

	phrases := []string{unknownPhrase}
	if el, ok := cat.Element(r.Bird.Element); ok {
		r.StringType = orDefault(el.StringType, unknown)
		if len(el.Phrases) > 0 {
			phrases = el.Phrases
		}
	}
	if st, ok := cat.StringType(r.StringType); ok {
		r.StringDescription = st.Description
	}

	signTrait := unknownSignTrait
	if s, ok := cat.Sign(chart.Moon.Sign); ok {
		signTrait = s.Trait
	}
	mansionTrait := unknownMansionTrait
	if n, ok := cat.Nakshatra(chart.Nakshatra); ok {
		mansionTrait = n.Trait
	}

	phrase := phrases[picker.Intn(len(phrases))]

	r.Summary = fmt.Sprintf(
		"You are a %s infused with %s in Pada %d precision ⏳, guided by %s (%s) of %s vibes like %s strings vibrating through reality! %s",
		signTrait, mansionTrait, chart.Pada,
		r.Bird.Name, r.Bird.Sanskrit, r.Bird.Element, r.StringType,
		phrase,
	)

	return r
}

func signReading(cat *catalog.Catalog, s domain.Sign, role catalog.Role, fallback string) domain.SignReading {
	out := domain.SignReading{Sign: s, Element: unknown, Description: fallback}

	if t, ok := cat.Sign(s); ok {
		out.Element = orDefault(t.Element, unknown)
	}
	if d, ok := cat.SignDescription(s, role); ok && d != "" {
		out.Description = d
	}

	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
