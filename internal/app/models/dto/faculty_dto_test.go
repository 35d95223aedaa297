package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUpdateFacultyRequestFields(t *testing.T) {
	name := "Dr. Engfield"
	years := 12
	departmentID := uuid.New()

	req := UpdateFacultyRequest{
		Name:            &name,
		ExperienceYears: &years,
		DepartmentID:    &departmentID,
	}

	fields := req.Fields()
	// Absent fields stay absent; the update only touches what was sent.
	assert.Len(t, fields, 3)
	assert.Equal(t, "Dr. Engfield", fields["name"])
	assert.Equal(t, 12, fields["experience_years"])
	assert.Equal(t, departmentID, fields["department_id"])
	assert.NotContains(t, fields, "email")
	assert.NotContains(t, fields, "bio")
}

func TestUpdateFacultyRequestClearsDepartment(t *testing.T) {
	zero := uuid.Nil
	req := UpdateFacultyRequest{DepartmentID: &zero}

	fields := req.Fields()
	// The zero UUID unassigns the member: department_id is written as
	// NULL, not as an id that cannot resolve.
	assert.Len(t, fields, 1)
	assert.Contains(t, fields, "department_id")
	assert.Nil(t, fields["department_id"])
}

func TestUpdateRequestsEmptyBody(t *testing.T) {
	assert.Empty(t, (&UpdateFacultyRequest{}).Fields())
	assert.Empty(t, (&UpdateDepartmentRequest{}).Fields())
	assert.Empty(t, (&UpdateCourseRequest{}).Fields())
}

func TestCreateFacultyRequestToModel(t *testing.T) {
	departmentID := uuid.New()
	designation := "Professor"
	req := CreateFacultyRequest{
		Name:         "Dr. Engfield",
		Email:        "dr.engfield@example.edu",
		Designation:  &designation,
		DepartmentID: &departmentID,
	}

	faculty := req.ToModel()
	assert.Equal(t, "Dr. Engfield", faculty.Name)
	assert.Equal(t, "dr.engfield@example.edu", faculty.Email)
	assert.Equal(t, &designation, faculty.Designation)
	assert.Equal(t, &departmentID, faculty.DepartmentID)
	assert.Nil(t, faculty.Phone)
}
