package geozone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validZone() Zone {
	return Zone{
		Identifier:  "TEST01",
		Country:     "CHE",
		Name:        "Test zone",
		Restriction: RestrictionProhibited,
		Applicability: []TimePeriod{
			{
				Permanent:     "NO",
				StartDateTime: "2024-01-01T00:00:00Z",
				EndDateTime:   "2025-01-01T00:00:00Z",
			},
		},
		ZoneAuthority: []Authority{{Name: "CAA"}},
		Geometry: []Volume{
			{
				UomDimensions:          "M",
				LowerLimit:             0,
				UpperLimit:             120,
				LowerVerticalReference: "AGL",
				UpperVerticalReference: "AGL",
				HorizontalProjection: Projection{
					Type:   ProjectionCircle,
					Center: []float64{8.54, 47.37},
					Radius: 500,
				},
			},
		},
	}
}

func TestValidateZone(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Zone)
		wantErr string
	}{
		{
			name:   "valid zone",
			mutate: func(z *Zone) {},
		},
		{
			name:    "missing identifier",
			mutate:  func(z *Zone) { z.Identifier = "" },
			wantErr: "identifier is required",
		},
		{
			name:    "two letter country",
			mutate:  func(z *Zone) { z.Country = "CH" },
			wantErr: "3-letter code",
		},
		{
			name:    "unknown restriction",
			mutate:  func(z *Zone) { z.Restriction = "FORBIDDEN" },
			wantErr: "unknown restriction kind",
		},
		{
			name:    "no authority",
			mutate:  func(z *Zone) { z.ZoneAuthority = nil },
			wantErr: "at least one authority",
		},
		{
			name:    "authority without name",
			mutate:  func(z *Zone) { z.ZoneAuthority[0].Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "no geometry",
			mutate:  func(z *Zone) { z.Geometry = nil },
			wantErr: "at least one volume",
		},
		{
			name:    "end before start",
			mutate:  func(z *Zone) { z.Applicability[0].EndDateTime = "2023-01-01T00:00:00Z" },
			wantErr: "precedes startDateTime",
		},
		{
			name:    "bad start timestamp",
			mutate:  func(z *Zone) { z.Applicability[0].StartDateTime = "yesterday" },
			wantErr: "startDateTime",
		},
		{
			name: "permanent with end",
			mutate: func(z *Zone) {
				z.Applicability[0].Permanent = "YES"
			},
			wantErr: "permanent window must not set endDateTime",
		},
		{
			name: "schedule without days",
			mutate: func(z *Zone) {
				z.Applicability[0].Schedule = []DailySchedule{{StartTime: "06:00", EndTime: "22:00"}}
			},
			wantErr: "day list is empty",
		},
		{
			name:    "inverted altitude band",
			mutate:  func(z *Zone) { z.Geometry[0].LowerLimit = 200 },
			wantErr: "below lowerLimit",
		},
		{
			name:    "zero radius circle",
			mutate:  func(z *Zone) { z.Geometry[0].HorizontalProjection.Radius = 0 },
			wantErr: "radius must be positive",
		},
		{
			name: "center out of range",
			mutate: func(z *Zone) {
				z.Geometry[0].HorizontalProjection.Center = []float64{200, 47}
			},
			wantErr: "longitude 200 out of range",
		},
		{
			name: "unknown projection",
			mutate: func(z *Zone) {
				z.Geometry[0].HorizontalProjection.Type = "Square"
			},
			wantErr: "unknown projection type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := validZone()
			tt.mutate(&zone)

			err := ValidateZone(zone)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateZonePolygon(t *testing.T) {
	zone := validZone()
	zone.Geometry[0].HorizontalProjection = Projection{
		Type: ProjectionPolygon,
		Coordinates: [][][]float64{
			{
				{7.58, 47.54},
				{7.59, 47.54},
				{7.59, 47.55},
				{7.58, 47.54},
			},
		},
	}
	assert.NoError(t, ValidateZone(zone))

	zone.Geometry[0].HorizontalProjection.Coordinates[0][3] = []float64{7.60, 47.56}
	err := ValidateZone(zone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not closed")

	zone.Geometry[0].HorizontalProjection.Coordinates = [][][]float64{
		{{7.58, 47.54}, {7.59, 47.54}, {7.58, 47.54}},
	}
	err = ValidateZone(zone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need at least 4")
}

func TestValidateSet(t *testing.T) {
	good := validZone()
	dup := validZone()
	bad := validZone()
	bad.Identifier = "TEST02"
	bad.Country = "X"

	err := ValidateSet(Set{Features: []Zone{good, dup, bad}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate identifier "TEST01"`)
	assert.Contains(t, err.Error(), "3-letter code")

	assert.NoError(t, ValidateSet(Set{Features: []Zone{good}}))
}

func TestValidateSetFixture(t *testing.T) {
	set, err := Load("testdata/restricted-zones.json")
	require.NoError(t, err)
	assert.NoError(t, ValidateSet(set))
}
