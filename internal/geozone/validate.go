package geozone

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	ErrMissingIdentifier  = errors.New("zone identifier is required")
	ErrInvalidCountry     = errors.New("country must be a 3-letter code")
	ErrInvalidRestriction = errors.New("unknown restriction kind")
	ErrNoAuthority        = errors.New("zone needs at least one authority")
	ErrNoGeometry         = errors.New("zone needs at least one volume")
)

// ValidateSet checks every zone in the set and rejects duplicate
// identifiers. All findings are joined so one pass reports everything.
func ValidateSet(set Set) error {
	var errs []error
	seen := make(map[string]bool)

	for i, zone := range set.Features {
		if zone.Identifier != "" && seen[zone.Identifier] {
			errs = append(errs, fmt.Errorf("zone %d: duplicate identifier %q", i, zone.Identifier))
		}
		seen[zone.Identifier] = true

		if err := ValidateZone(zone); err != nil {
			errs = append(errs, fmt.Errorf("zone %d (%s): %w", i, zone.Identifier, err))
		}
	}
	return errors.Join(errs...)
}

// ValidateZone checks one zone's required fields, restriction kind,
// applicability windows, authorities, and geometry.
func ValidateZone(zone Zone) error {
	if zone.Identifier == "" {
		return ErrMissingIdentifier
	}
	if len(zone.Country) != 3 {
		return fmt.Errorf("%w: %q", ErrInvalidCountry, zone.Country)
	}
	if !slices.Contains(Restrictions, zone.Restriction) {
		return fmt.Errorf("%w: %q", ErrInvalidRestriction, zone.Restriction)
	}
	if len(zone.ZoneAuthority) == 0 {
		return ErrNoAuthority
	}
	if len(zone.Geometry) == 0 {
		return ErrNoGeometry
	}

	for i, period := range zone.Applicability {
		if err := validatePeriod(period); err != nil {
			return fmt.Errorf("applicability %d: %w", i, err)
		}
	}
	for i, authority := range zone.ZoneAuthority {
		if authority.Name == "" {
			return fmt.Errorf("authority %d: name is required", i)
		}
	}
	for i, volume := range zone.Geometry {
		if err := validateVolume(volume); err != nil {
			return fmt.Errorf("volume %d: %w", i, err)
		}
	}
	return nil
}

func validatePeriod(period TimePeriod) error {
	var start, end time.Time

	if period.StartDateTime != "" {
		t, err := time.Parse(time.RFC3339, period.StartDateTime)
		if err != nil {
			return fmt.Errorf("startDateTime: %w", err)
		}
		start = t
	}
	if period.EndDateTime != "" {
		t, err := time.Parse(time.RFC3339, period.EndDateTime)
		if err != nil {
			return fmt.Errorf("endDateTime: %w", err)
		}
		end = t
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("endDateTime %s precedes startDateTime %s", period.EndDateTime, period.StartDateTime)
	}
	if period.Permanent == "YES" && period.EndDateTime != "" {
		return errors.New("permanent window must not set endDateTime")
	}

	for i, sched := range period.Schedule {
		if len(sched.Day) == 0 {
			return fmt.Errorf("schedule %d: day list is empty", i)
		}
		if sched.StartTime == "" || sched.EndTime == "" {
			return fmt.Errorf("schedule %d: startTime and endTime are required", i)
		}
	}
	return nil
}

func validateVolume(volume Volume) error {
	if volume.UpperLimit < volume.LowerLimit {
		return fmt.Errorf("upperLimit %v below lowerLimit %v", volume.UpperLimit, volume.LowerLimit)
	}
	return validateProjection(volume.HorizontalProjection)
}

func validateProjection(projection Projection) error {
	switch projection.Type {
	case ProjectionPolygon:
		if len(projection.Coordinates) == 0 {
			return errors.New("polygon has no rings")
		}
		for i, ring := range projection.Coordinates {
			if len(ring) < 4 {
				return fmt.Errorf("ring %d has %d points, need at least 4", i, len(ring))
			}
			first, last := ring[0], ring[len(ring)-1]
			if len(first) != 2 || len(last) != 2 {
				return fmt.Errorf("ring %d has a point that is not a lng/lat pair", i)
			}
			if first[0] != last[0] || first[1] != last[1] {
				return fmt.Errorf("ring %d is not closed", i)
			}
			for j, point := range ring {
				if err := validatePoint(point); err != nil {
					return fmt.Errorf("ring %d point %d: %w", i, j, err)
				}
			}
		}
	case ProjectionCircle:
		if err := validatePoint(projection.Center); err != nil {
			return fmt.Errorf("circle center: %w", err)
		}
		if projection.Radius <= 0 {
			return fmt.Errorf("circle radius must be positive, got %v", projection.Radius)
		}
	default:
		return fmt.Errorf("unknown projection type %q", projection.Type)
	}
	return nil
}

func validatePoint(point []float64) error {
	if len(point) != 2 {
		return fmt.Errorf("expected lng/lat pair, got %d values", len(point))
	}
	lng, lat := point[0], point[1]
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %v out of range", lng)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range", lat)
	}
	return nil
}
