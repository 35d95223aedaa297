package dto

import (
	"github.com/google/uuid"

	"github.com/feims/feims/internal/app/models"
)

// CreateFacultyRequest represents a faculty member creation request
type CreateFacultyRequest struct {
	Name            string     `json:"name" binding:"required" example:"Dr. Engfield"`
	Email           string     `json:"email" binding:"required" example:"dr.engfield@example.edu"`
	Designation     *string    `json:"designation,omitempty" example:"Professor"`
	ExperienceYears *int       `json:"experienceYears,omitempty" example:"12"`
	Phone           *string    `json:"phone,omitempty"`
	Bio             *string    `json:"bio,omitempty"`
	ProfilePhotoURL *string    `json:"profilePhotoUrl,omitempty"`
	DepartmentID    *uuid.UUID `json:"departmentId,omitempty"`
}

// ToModel converts the request into a faculty model.
func (r *CreateFacultyRequest) ToModel() *models.Faculty {
	return &models.Faculty{
		Name:            r.Name,
		Email:           r.Email,
		Designation:     r.Designation,
		ExperienceYears: r.ExperienceYears,
		Phone:           r.Phone,
		Bio:             r.Bio,
		ProfilePhotoURL: r.ProfilePhotoURL,
		DepartmentID:    r.DepartmentID,
	}
}

// UpdateFacultyRequest represents a partial faculty update. Only the
// fields present in the request are written. Sending the zero UUID as
// departmentId clears the assignment.
type UpdateFacultyRequest struct {
	Name            *string    `json:"name,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Designation     *string    `json:"designation,omitempty"`
	ExperienceYears *int       `json:"experienceYears,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Bio             *string    `json:"bio,omitempty"`
	ProfilePhotoURL *string    `json:"profilePhotoUrl,omitempty"`
	DepartmentID    *uuid.UUID `json:"departmentId,omitempty"`
}

// Fields returns the set columns for a partial update.
func (r *UpdateFacultyRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Designation != nil {
		fields["designation"] = *r.Designation
	}
	if r.ExperienceYears != nil {
		fields["experience_years"] = *r.ExperienceYears
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.Bio != nil {
		fields["bio"] = *r.Bio
	}
	if r.ProfilePhotoURL != nil {
		fields["profile_photo_url"] = *r.ProfilePhotoURL
	}
	if r.DepartmentID != nil {
		if *r.DepartmentID == uuid.Nil {
			fields["department_id"] = nil
		} else {
			fields["department_id"] = *r.DepartmentID
		}
	}
	return fields
}

// CreateQualificationRequest attaches a qualification to a faculty
// member.
type CreateQualificationRequest struct {
	DegreeType   string  `json:"degreeType" binding:"required" example:"PhD"`
	Institution  string  `json:"institution" binding:"required" example:"MIT"`
	FieldOfStudy *string `json:"fieldOfStudy,omitempty"`
	Year         *int    `json:"year,omitempty" example:"2010"`
	Remarks      *string `json:"remarks,omitempty"`
}

// ToModel converts the request into a qualification model.
func (r *CreateQualificationRequest) ToModel(facultyID uuid.UUID) *models.Qualification {
	return &models.Qualification{
		FacultyID:    facultyID,
		DegreeType:   r.DegreeType,
		Institution:  r.Institution,
		FieldOfStudy: r.FieldOfStudy,
		Year:         r.Year,
		Remarks:      r.Remarks,
	}
}

// UpdateQualificationRequest represents a partial qualification update.
type UpdateQualificationRequest struct {
	DegreeType   *string `json:"degreeType,omitempty"`
	Institution  *string `json:"institution,omitempty"`
	FieldOfStudy *string `json:"fieldOfStudy,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Remarks      *string `json:"remarks,omitempty"`
}

// Fields returns the set columns for a partial update.
func (r *UpdateQualificationRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.DegreeType != nil {
		fields["degree_type"] = *r.DegreeType
	}
	if r.Institution != nil {
		fields["institution"] = *r.Institution
	}
	if r.FieldOfStudy != nil {
		fields["field_of_study"] = *r.FieldOfStudy
	}
	if r.Year != nil {
		fields["year"] = *r.Year
	}
	if r.Remarks != nil {
		fields["remarks"] = *r.Remarks
	}
	return fields
}

// CreatePublicationRequest attaches a publication to a faculty member.
type CreatePublicationRequest struct {
	Title           string  `json:"title" binding:"required"`
	Venue           *string `json:"venue,omitempty"`
	Year            *int    `json:"year,omitempty" example:"2024"`
	DOI             *string `json:"doi,omitempty"`
	URL             *string `json:"url,omitempty"`
	PublicationType *string `json:"publicationType,omitempty" example:"journal"`
}

// ToModel converts the request into a publication model.
func (r *CreatePublicationRequest) ToModel(facultyID uuid.UUID) *models.Publication {
	return &models.Publication{
		FacultyID:       facultyID,
		Title:           r.Title,
		Venue:           r.Venue,
		Year:            r.Year,
		DOI:             r.DOI,
		URL:             r.URL,
		PublicationType: r.PublicationType,
	}
}

// UpdatePublicationRequest represents a partial publication update.
type UpdatePublicationRequest struct {
	Title           *string `json:"title,omitempty"`
	Venue           *string `json:"venue,omitempty"`
	Year            *int    `json:"year,omitempty"`
	DOI             *string `json:"doi,omitempty"`
	URL             *string `json:"url,omitempty"`
	PublicationType *string `json:"publicationType,omitempty"`
}

// Fields returns the set columns for a partial update.
func (r *UpdatePublicationRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Venue != nil {
		fields["venue"] = *r.Venue
	}
	if r.Year != nil {
		fields["year"] = *r.Year
	}
	if r.DOI != nil {
		fields["doi"] = *r.DOI
	}
	if r.URL != nil {
		fields["url"] = *r.URL
	}
	if r.PublicationType != nil {
		fields["publication_type"] = *r.PublicationType
	}
	return fields
}
