package domain

import (
	"fmt"
	"strings"
)

// Sign is one of the twelve 30-degree sidereal zodiac signs (rashi).
type Sign int

const (
	Mesha Sign = iota
	Vrishabha
	Mithuna
	Karka
	Simha
	Kanya
	Tula
	Vrishchika
	Dhanu
	Makara
	Kumbha
	Meena
)

var signNames = [...]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrishchika", "Dhanu", "Makara", "Kumbha", "Meena",
}

func (s Sign) Valid() bool { return s >= 0 && int(s) < len(signNames) }

func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

func (s Sign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("marshal sign: %d out of range", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Sign) UnmarshalText(b []byte) error {
	v, ok := ParseSign(string(b))
	if !ok {
		return fmt.Errorf("unmarshal sign: unknown sign %q", string(b))
	}
	*s = v
	return nil
}

// ParseSign looks a sign up by name, ignoring case.
func ParseSign(name string) (Sign, bool) {
	for i, n := range signNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Sign(i), true
		}
	}
	return 0, false
}

// AllSigns returns the signs in zodiac order.
func AllSigns() []Sign {
	out := make([]Sign, len(signNames))
	for i := range out {
		out[i] = Sign(i)
	}
	return out
}

// Nakshatra is one of the 27 lunar mansions of 13°20'.
type Nakshatra int

var nakshatraNames = [...]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purvaphalguni", "Uttaraphalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshta",
	"Mula", "Purvashada", "Uttarashada", "Shravana", "Dhanishta", "Shatabhisha",
	"Purvabhadra", "Uttarabhadra", "Revati",
}

func (n Nakshatra) Valid() bool { return n >= 0 && int(n) < len(nakshatraNames) }

func (n Nakshatra) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Nakshatra(%d)", int(n))
	}
	return nakshatraNames[n]
}

func (n Nakshatra) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("marshal nakshatra: %d out of range", int(n))
	}
	return []byte(n.String()), nil
}

func (n *Nakshatra) UnmarshalText(b []byte) error {
	v, ok := ParseNakshatra(string(b))
	if !ok {
		return fmt.Errorf("unmarshal nakshatra: unknown nakshatra %q", string(b))
	}
	*n = v
	return nil
}

func ParseNakshatra(name string) (Nakshatra, bool) {
	for i, n := range nakshatraNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Nakshatra(i), true
		}
	}
	return 0, false
}

func AllNakshatras() []Nakshatra {
	out := make([]Nakshatra, len(nakshatraNames))
	for i := range out {
		out[i] = Nakshatra(i)
	}
	return out
}

// Paksha is the lunar fortnight: waxing (Shukla) or waning (Krishna).
type Paksha int

const (
	Shukla Paksha = iota
	Krishna
)

func (p Paksha) String() string {
	switch p {
	case Shukla:
		return "Shukla"
	case Krishna:
		return "Krishna"
	default:
		return fmt.Sprintf("Paksha(%d)", int(p))
	}
}

func (p Paksha) MarshalText() ([]byte, error) {
	if p != Shukla && p != Krishna {
		return nil, fmt.Errorf("marshal paksha: %d out of range", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Paksha) UnmarshalText(b []byte) error {
	v, ok := ParsePaksha(string(b))
	if !ok {
		return fmt.Errorf("unmarshal paksha: unknown paksha %q", string(b))
	}
	*p = v
	return nil
}

func ParsePaksha(name string) (Paksha, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shukla":
		return Shukla, true
	case "krishna":
		return Krishna, true
	}
	return 0, false
}
