package road

import "fmt"

// HighwayType classifies a Road by its OSM "highway" tag. The set is
// closed: ParseLine maps any unrecognised tag value to HighwayUnknown.
type HighwayType uint8

const (
	HighwayUnknown HighwayType = iota
	HighwayMotorway
	HighwayMotorwayLink
	HighwayTrunk
	HighwayTrunkLink
	HighwayPrimary
	HighwayPrimaryLink
	HighwaySecondary
	HighwaySecondaryLink
	HighwayTertiary
	HighwayTertiaryLink
	HighwayUnclassified
	HighwayResidential
	HighwayLivingStreet
	HighwayService
	HighwayRoad
	HighwayPedestrian
	HighwayFootway
	HighwayCycleway
	HighwayPath
	HighwayBridleway
	HighwaySteps
	HighwayTrack
	HighwayBusway
	HighwayEscape
	HighwayRaceway
	HighwayConstruction
	HighwayProposed
)

var highwayNames = map[string]HighwayType{
	"motorway":       HighwayMotorway,
	"motorway_link":  HighwayMotorwayLink,
	"trunk":          HighwayTrunk,
	"trunk_link":     HighwayTrunkLink,
	"primary":        HighwayPrimary,
	"primary_link":   HighwayPrimaryLink,
	"secondary":      HighwaySecondary,
	"secondary_link": HighwaySecondaryLink,
	"tertiary":       HighwayTertiary,
	"tertiary_link":  HighwayTertiaryLink,
	"unclassified":   HighwayUnclassified,
	"residential":    HighwayResidential,
	"living_street":  HighwayLivingStreet,
	"service":        HighwayService,
	"road":           HighwayRoad,
	"pedestrian":     HighwayPedestrian,
	"footway":        HighwayFootway,
	"cycleway":       HighwayCycleway,
	"path":           HighwayPath,
	"bridleway":      HighwayBridleway,
	"steps":          HighwaySteps,
	"track":          HighwayTrack,
	"busway":         HighwayBusway,
	"escape":         HighwayEscape,
	"raceway":        HighwayRaceway,
	"construction":   HighwayConstruction,
	"proposed":       HighwayProposed,
}

var highwayStrings = func() map[HighwayType]string {
	m := make(map[HighwayType]string, len(highwayNames)+1)
	for s, t := range highwayNames {
		m[t] = s
	}
	m[HighwayUnknown] = "unknown"

	return m
}()

// parseHighway maps an OSM highway tag value to its HighwayType,
// defaulting to HighwayUnknown for anything not in the closed set.
func parseHighway(tag string) HighwayType {
	if t, ok := highwayNames[tag]; ok {
		return t
	}

	return HighwayUnknown
}

// String returns the OSM tag spelling of h, or "unknown".
func (h HighwayType) String() string {
	if s, ok := highwayStrings[h]; ok {
		return s
	}

	return "unknown"
}

// nonCarClasses is the closed set of highway kinds for which cars are
// disallowed or inappropriate, per the Fastest weight's nonroad penalty.
var nonCarClasses = map[HighwayType]bool{
	HighwayPedestrian:   true,
	HighwayFootway:      true,
	HighwayCycleway:     true,
	HighwayPath:         true,
	HighwayBridleway:    true,
	HighwaySteps:        true,
	HighwayTrack:        true,
	HighwayBusway:       true,
	HighwayEscape:       true,
	HighwayRaceway:      true,
	HighwayConstruction: true,
	HighwayProposed:     true,
	HighwayUnclassified: true,
	HighwayService:      true,
	HighwayUnknown:      true,
}

// IsNonCar reports whether h is on the closed non-car class list.
func (h HighwayType) IsNonCar() bool {
	return nonCarClasses[h]
}

// ratingTable maps each HighwayType to its preferability rating.
// Kinds absent from this table (unknown and the non-car kinds other than
// service and unclassified) default to 0.01 via Road.Rating.
var ratingTable = map[HighwayType]float64{
	HighwayMotorway:      64,
	HighwayMotorwayLink:  64,
	HighwayTrunk:         32,
	HighwayTrunkLink:     32,
	HighwayPrimary:       16,
	HighwayPrimaryLink:   16,
	HighwaySecondary:     8,
	HighwaySecondaryLink: 8,
	HighwayTertiary:      4,
	HighwayTertiaryLink:  4,
	HighwayResidential:   2,
	HighwayLivingStreet:  2,
	HighwayRoad:          2,
	HighwayService:       1,
	HighwayUnclassified:  1,
}

// Point is a longitude/latitude coordinate of a Road's polyline, stored
// as float32 to match the on-disk cache layout (spec §6).
type Point struct {
	Lon float32
	Lat float32
}

// Road is a single parsed GeoJSON road feature.
//
// Points has length ≥ 1 (typically 2..N) once successfully parsed;
// ParseLine rejects empty coordinate sequences with ErrEmptyGeometry.
type Road struct {
	ID      int32
	Points  []Point
	Highway HighwayType
	Name    string
	Ref     string

	Roundabout bool
	Oneway     bool
	Bridge     bool
	Toll       bool
	Lit        bool

	// Maxspeed is km/h, or -1 when the tag is absent.
	Maxspeed int32
	// Lanes defaults to 1 when the tag is absent.
	Lanes int32
}

// Rating returns r's integer-valued preferability, determined only by
// its highway kind; unrecognised/low-priority kinds default to 0.01.
func (r Road) Rating() float64 {
	if v, ok := ratingTable[r.Highway]; ok {
		return v
	}

	return 0.01
}

// Visibility is a level-of-detail hint consumed by renderers (out of
// scope here, but part of the public contract): max(maxspeed/50 *
// lanes, 0.5) * Rating().
func (r Road) Visibility() float64 {
	speed := float64(r.Maxspeed)
	if speed < 0 {
		speed = 0
	}
	lanes := float64(r.Lanes)
	if lanes <= 0 {
		lanes = 1
	}

	factor := speed / 50 * lanes
	if factor < 0.5 {
		factor = 0.5
	}

	return factor * r.Rating()
}

// String returns a one-line human-readable summary for CLI banners and
// debugging: id, highway kind, name, and the boolean flags that are set.
func (r Road) String() string {
	name := r.Name
	if name == "" {
		name = "(unnamed)"
	}

	flags := ""
	for _, f := range []struct {
		set  bool
		name string
	}{
		{r.Roundabout, "roundabout"},
		{r.Oneway, "oneway"},
		{r.Bridge, "bridge"},
		{r.Toll, "toll"},
		{r.Lit, "lit"},
	} {
		if f.set {
			flags += " " + f.name
		}
	}

	return fmt.Sprintf("Road#%d[%s] %s (%d pts)%s", r.ID, r.Highway, name, len(r.Points), flags)
}
