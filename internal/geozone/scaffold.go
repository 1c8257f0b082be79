package geozone

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewZone builds a starter zone for a scaffolded fixture. The identifier
// is derived from a fresh UUID so repeated scaffolds never collide.
func NewZone(name, country, restriction string) Zone {
	identifier := strings.ToUpper(uuid.NewString()[:8])
	now := time.Now().UTC().Truncate(time.Second)

	return Zone{
		Identifier:  identifier,
		Country:     country,
		Name:        name,
		Type:        "CUSTOMIZED",
		Restriction: restriction,
		Applicability: []TimePeriod{
			{
				Permanent:     "NO",
				StartDateTime: now.Format(time.RFC3339),
				EndDateTime:   now.AddDate(1, 0, 0).Format(time.RFC3339),
			},
		},
		ZoneAuthority: []Authority{
			{
				Name:    "Civil Aviation Authority",
				Purpose: PurposeInformation,
			},
		},
		Geometry: []Volume{
			{
				UomDimensions:          "M",
				LowerLimit:             0,
				UpperLimit:             120,
				LowerVerticalReference: "AGL",
				UpperVerticalReference: "AGL",
				HorizontalProjection: Projection{
					Type:   ProjectionCircle,
					Center: []float64{0, 0},
					Radius: 500,
				},
			},
		},
	}
}

// WriteSet serializes a scaffolded set to path. Existing files are never
// overwritten: the testing harness matches fixtures byte for byte, so a
// file on disk is final.
func WriteSet(path string, set Set) error {
	if err := ValidateSet(set); err != nil {
		return fmt.Errorf("validate fixture: %w", err)
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	data = append(data, '\n')

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("fixture %s already exists and will not be rewritten", path)
		}
		return fmt.Errorf("create fixture: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}
