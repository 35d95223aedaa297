package repositories

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feims/feims/internal/app/models"
)

func TestUserInsertBindsGeneratedID(t *testing.T) {
	repo := NewUserRepository(nil)
	user := &models.User{
		ID:       uuid.New(),
		Email:    "dr.engfield@example.edu",
		Password: "bcrypt-hash",
	}

	sql, args, err := repo.buildInsert(user)
	require.NoError(t, err)

	// The users table has no column default for id, so the statement
	// must carry the id the service generated.
	assert.Contains(t, sql, "INSERT INTO users (id,email,password,email_confirmed)")
	require.Len(t, args, 4)
	assert.Equal(t, user.ID.String(), fmt.Sprint(args[0]))
	assert.Equal(t, user.Email, args[1])
}

func TestProfileInsertKeyedByIdentity(t *testing.T) {
	repo := NewProfileRepository(nil)
	profile := &models.Profile{ID: uuid.New(), Name: "dr.engfield"}

	sql, args, err := repo.buildInsert(profile)
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO profiles (id,name)")
	require.Len(t, args, 2)
	assert.Equal(t, profile.ID.String(), fmt.Sprint(args[0]))
	assert.Equal(t, profile.Name, args[1])
}
