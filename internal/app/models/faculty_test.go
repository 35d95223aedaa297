package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feims/feims/internal/pkg/apperrors"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestFacultyValidate(t *testing.T) {
	tests := []struct {
		name    string
		faculty Faculty
		wantErr bool
	}{
		{
			name:    "valid member",
			faculty: Faculty{Name: "Dr. Engfield", Email: "dr.engfield@example.edu"},
		},
		{
			name:    "valid member with optional fields",
			faculty: Faculty{Name: "Dr. Engfield", Email: "dr.engfield@example.edu", ExperienceYears: intPtr(12), Designation: strPtr("Professor")},
		},
		{
			name:    "missing name",
			faculty: Faculty{Name: "  ", Email: "dr.engfield@example.edu"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			faculty: Faculty{Name: "Dr. Engfield", Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "negative experience",
			faculty: Faculty{Name: "Dr. Engfield", Email: "dr.engfield@example.edu", ExperienceYears: intPtr(-1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.faculty.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFacultyMatchesSearch(t *testing.T) {
	engineering := &Department{Code: "ENG", Name: "Engineering"}
	engfield := Faculty{Name: "Dr. Engfield", Email: "engfield@example.edu"}
	mathMember := Faculty{Name: "Dr. Moriarty", Email: "moriarty@example.edu", Department: engineering}
	unrelated := Faculty{Name: "Dr. Plum", Email: "plum@example.edu"}

	tests := []struct {
		name    string
		faculty Faculty
		query   string
		want    bool
	}{
		{name: "substring of name", faculty: engfield, query: "eng", want: true},
		{name: "substring of department name", faculty: mathMember, query: "eng", want: true},
		{name: "no match anywhere", faculty: unrelated, query: "eng", want: false},
		{name: "case-insensitive", faculty: engfield, query: "ENGFIELD", want: true},
		{name: "matches email", faculty: unrelated, query: "plum@", want: true},
		{name: "empty query matches all", faculty: unrelated, query: "", want: true},
		{name: "whitespace query matches all", faculty: unrelated, query: "   ", want: true},
		{name: "nil department does not panic", faculty: engfield, query: "physics", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.faculty.MatchesSearch(tt.query))
		})
	}
}
