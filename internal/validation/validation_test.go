package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProjectInput() *CreateProjectInput {
	return &CreateProjectInput{
		Title:       "Reboisement de la côte Est",
		Description: "Un projet de reboisement communautaire sur la côte Est de Madagascar.",
		Goal:        100000,
	}
}

func TestValidateProjectCreate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateProjectInput)
		wantField string
	}{
		{
			name:   "valid input",
			mutate: func(in *CreateProjectInput) {},
		},
		{
			name:   "valid with image url",
			mutate: func(in *CreateProjectInput) { in.ImageURL = "https://cdn.example.com/p.png" },
		},
		{
			name:      "title too short",
			mutate:    func(in *CreateProjectInput) { in.Title = "abcd" },
			wantField: "title",
		},
		{
			name:      "title too long",
			mutate:    func(in *CreateProjectInput) { in.Title = strings.Repeat("a", 256) },
			wantField: "title",
		},
		{
			name:      "description too short",
			mutate:    func(in *CreateProjectInput) { in.Description = "trop court" },
			wantField: "description",
		},
		{
			name:      "goal below minimum",
			mutate:    func(in *CreateProjectInput) { in.Goal = 999 },
			wantField: "goal",
		},
		{
			name:      "goal above maximum",
			mutate:    func(in *CreateProjectInput) { in.Goal = 10000001 },
			wantField: "goal",
		},
		{
			name:      "goal missing",
			mutate:    func(in *CreateProjectInput) { in.Goal = 0 },
			wantField: "goal",
		},
		{
			name:      "malformed image url",
			mutate:    func(in *CreateProjectInput) { in.ImageURL = "not-a-url" },
			wantField: "image_url",
		},
		{
			name:      "title whitespace only",
			mutate:    func(in *CreateProjectInput) { in.Title = "     " },
			wantField: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProjectInput()
			tt.mutate(in)

			errs := ValidateProjectCreate(in)
			if tt.wantField == "" {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func TestValidateProjectCreateTrimsFields(t *testing.T) {
	in := validProjectInput()
	in.Title = "  Reboisement de la côte Est  "
	in.Description = "  " + in.Description + "  "

	errs := ValidateProjectCreate(in)

	require.Nil(t, errs)
	assert.Equal(t, "Reboisement de la côte Est", in.Title)
	assert.False(t, strings.HasPrefix(in.Description, " "))
}

func TestValidateProjectUpdate(t *testing.T) {
	str := func(s string) *string { return &s }
	f64 := func(f float64) *float64 { return &f }

	tests := []struct {
		name      string
		input     UpdateProjectInput
		wantField string
	}{
		{
			name:  "empty update is valid",
			input: UpdateProjectInput{},
		},
		{
			name:  "partial update",
			input: UpdateProjectInput{Title: str("Nouveau titre du projet")},
		},
		{
			name:  "valid status",
			input: UpdateProjectInput{Status: str("completed")},
		},
		{
			name:      "invalid status",
			input:     UpdateProjectInput{Status: str("archived")},
			wantField: "status",
		},
		{
			name:      "goal out of bounds",
			input:     UpdateProjectInput{Goal: f64(500)},
			wantField: "goal",
		},
		{
			name:      "title too short",
			input:     UpdateProjectInput{Title: str("ab")},
			wantField: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateProjectUpdate(&tt.input)
			if tt.wantField == "" {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func validContributionInput() *CreateContributionInput {
	return &CreateContributionInput{
		ProjectID: "a2f7c9b4-1d3e-4f5a-8b6c-7d8e9f0a1b2c",
		DonorName: "Rakoto",
		Amount:    5000,
	}
}

func TestValidateContributionCreate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateContributionInput)
		wantField string
	}{
		{
			name:   "valid minimal input",
			mutate: func(in *CreateContributionInput) {},
		},
		{
			name: "valid full input",
			mutate: func(in *CreateContributionInput) {
				in.DonorEmail = "rakoto@example.com"
				in.Message = "Bon courage!"
			},
		},
		{
			name:      "invalid project id",
			mutate:    func(in *CreateContributionInput) { in.ProjectID = "42" },
			wantField: "project_id",
		},
		{
			name:      "donor name too short",
			mutate:    func(in *CreateContributionInput) { in.DonorName = "R" },
			wantField: "donor_name",
		},
		{
			name:      "invalid email",
			mutate:    func(in *CreateContributionInput) { in.DonorEmail = "pas-un-email" },
			wantField: "donor_email",
		},
		{
			name:      "amount below minimum",
			mutate:    func(in *CreateContributionInput) { in.Amount = 50 },
			wantField: "amount",
		},
		{
			name:      "amount above maximum",
			mutate:    func(in *CreateContributionInput) { in.Amount = 1000001 },
			wantField: "amount",
		},
		{
			name:      "message too long",
			mutate:    func(in *CreateContributionInput) { in.Message = strings.Repeat("m", 1001) },
			wantField: "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validContributionInput()
			tt.mutate(in)

			errs := ValidateContributionCreate(in)
			if tt.wantField == "" {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}
