package geozone

// Restriction kinds.
const (
	RestrictionProhibited       = "PROHIBITED"
	RestrictionReqAuthorisation = "REQ_AUTHORISATION"
	RestrictionConditional      = "CONDITIONAL"
	RestrictionNone             = "NO_RESTRICTION"
)

// Restrictions lists all valid restriction kinds.
var Restrictions = []string{
	RestrictionProhibited,
	RestrictionReqAuthorisation,
	RestrictionConditional,
	RestrictionNone,
}

// Horizontal projection types.
const (
	ProjectionPolygon = "Polygon"
	ProjectionCircle  = "Circle"
)

// Authority purposes.
const (
	PurposeAuthorization = "AUTHORIZATION"
	PurposeNotification  = "NOTIFICATION"
	PurposeInformation   = "INFORMATION"
)

// Set is one fixture file: a titled collection of zones.
type Set struct {
	// Title names the fixture set.
	Title string `json:"title,omitempty"`

	// Description explains the scenario the set exercises.
	Description string `json:"description,omitempty"`

	// Features is the list of zones.
	Features []Zone `json:"features"`
}

// Zone is one airspace-restriction zone.
type Zone struct {
	// Identifier uniquely identifies the zone within its country.
	Identifier string `json:"identifier"`

	// Country is the ISO 3166-1 alpha-3 code of the issuing state.
	Country string `json:"country"`

	// Name is the human-readable zone name.
	Name string `json:"name,omitempty"`

	// Type distinguishes common zones from customized test zones.
	Type string `json:"type,omitempty"`

	// Restriction is the restriction kind (PROHIBITED, REQ_AUTHORISATION,
	// CONDITIONAL, NO_RESTRICTION).
	Restriction string `json:"restriction"`

	// Reason lists why the restriction exists (e.g., AIR_TRAFFIC, SENSITIVE).
	Reason []string `json:"reason,omitempty"`

	// Message is free text shown to operators.
	Message string `json:"message,omitempty"`

	// Applicability lists the time windows during which the zone applies.
	// An empty list means always applicable.
	Applicability []TimePeriod `json:"applicability,omitempty"`

	// ZoneAuthority lists the authorities responsible for the zone.
	ZoneAuthority []Authority `json:"zoneAuthority"`

	// Geometry lists the volumes the zone occupies.
	Geometry []Volume `json:"geometry"`
}

// TimePeriod is one applicability window.
type TimePeriod struct {
	// Permanent is "YES" for zones without an end, "NO" otherwise.
	Permanent string `json:"permanent,omitempty"`

	// StartDateTime and EndDateTime bound the window (RFC 3339).
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`

	// Schedule restricts the window to recurring daily intervals.
	Schedule []DailySchedule `json:"schedule,omitempty"`
}

// DailySchedule is a recurring daily interval within a time period.
type DailySchedule struct {
	// Day lists weekday codes (MON..SUN) or ANY.
	Day []string `json:"day"`

	// StartTime and EndTime bound the interval within each day.
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Authority is a contact record for the body responsible for a zone.
type Authority struct {
	// Name is the authority name.
	Name string `json:"name"`

	// Service is the office or desk within the authority.
	Service string `json:"service,omitempty"`

	// ContactName is a person to contact.
	ContactName string `json:"contactName,omitempty"`

	// SiteURL points to the authority's website.
	SiteURL string `json:"siteURL,omitempty"`

	// Email and Phone are direct contact channels.
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// Purpose is what the authority is contacted for
	// (AUTHORIZATION, NOTIFICATION, INFORMATION).
	Purpose string `json:"purpose,omitempty"`

	// IntervalBefore is the lead time for contacting the authority
	// (ISO 8601 duration).
	IntervalBefore string `json:"intervalBefore,omitempty"`
}

// Volume is an altitude band with a horizontal footprint.
type Volume struct {
	// UomDimensions is the unit for the vertical limits (M or FT).
	UomDimensions string `json:"uomDimensions"`

	// LowerLimit and UpperLimit bound the altitude band.
	LowerLimit float64 `json:"lowerLimit"`
	UpperLimit float64 `json:"upperLimit"`

	// LowerVerticalReference and UpperVerticalReference name the datum
	// for each limit (AGL or AMSL).
	LowerVerticalReference string `json:"lowerVerticalReference"`
	UpperVerticalReference string `json:"upperVerticalReference"`

	// HorizontalProjection is the footprint.
	HorizontalProjection Projection `json:"horizontalProjection"`
}

// Projection is a polygon or circle footprint in lng/lat coordinates.
type Projection struct {
	// Type is Polygon or Circle.
	Type string `json:"type"`

	// Coordinates holds the polygon rings; first ring is the outer boundary.
	// Each ring must be closed (first point repeated last) with at least
	// four points.
	Coordinates [][][]float64 `json:"coordinates,omitempty"`

	// Center and Radius describe a circle. Radius is in meters.
	Center []float64 `json:"center,omitempty"`
	Radius float64   `json:"radius,omitempty"`
}
