package repositories

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuerySearchPredicate(t *testing.T) {
	repo := NewFacultyRepository(nil)

	sql, args, err := repo.buildListQuery(FacultyFilter{Search: "eng"})
	require.NoError(t, err)

	// One case-insensitive predicate per searched column, OR-joined.
	assert.Equal(t, 3, strings.Count(sql, "ILIKE"))
	assert.Contains(t, sql, "f.name ILIKE")
	assert.Contains(t, sql, "f.email ILIKE")
	assert.Contains(t, sql, "d.name ILIKE")
	assert.Contains(t, sql, " OR ")
	assert.Contains(t, sql, "LEFT JOIN departments d ON d.id = f.department_id")
	assert.Contains(t, sql, "ORDER BY f.name ASC")

	require.Len(t, args, 3)
	for _, arg := range args {
		assert.Equal(t, "%eng%", arg)
	}
}

func TestBuildListQueryDepartmentFilter(t *testing.T) {
	repo := NewFacultyRepository(nil)
	departmentID := uuid.New()

	sql, args, err := repo.buildListQuery(FacultyFilter{DepartmentID: &departmentID})
	require.NoError(t, err)

	assert.Contains(t, sql, "f.department_id =")
	assert.NotContains(t, sql, "ILIKE")
	require.Len(t, args, 1)
	// squirrel resolves uuid.UUID through driver.Valuer, so the bound
	// argument is the rendered string.
	assert.Equal(t, departmentID.String(), args[0])
}

func TestBuildListQueryNoFilter(t *testing.T) {
	repo := NewFacultyRepository(nil)

	sql, args, err := repo.buildListQuery(FacultyFilter{})
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "ORDER BY f.name ASC")
	assert.Empty(t, args)
}

func TestBuildListQueryCombinedFilter(t *testing.T) {
	repo := NewFacultyRepository(nil)
	departmentID := uuid.New()

	sql, args, err := repo.buildListQuery(FacultyFilter{Search: "smith", DepartmentID: &departmentID})
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(sql, "ILIKE"))
	assert.Contains(t, sql, "f.department_id =")
	// Search placeholders come before the department placeholder.
	require.Len(t, args, 4)
	assert.Equal(t, "%smith%", args[0])
	assert.Equal(t, departmentID.String(), args[3])
}

func TestBuildListQueryEscapesWildcards(t *testing.T) {
	repo := NewFacultyRepository(nil)

	// LIKE metacharacters in the query match themselves, not anything.
	_, args, err := repo.buildListQuery(FacultyFilter{Search: `50%_off\`})
	require.NoError(t, err)

	require.Len(t, args, 3)
	for _, arg := range args {
		assert.Equal(t, `%50\%\_off\\%`, arg)
	}
}
