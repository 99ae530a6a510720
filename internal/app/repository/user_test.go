package repository

import (
	"testing"

	"campomarket/internal/app/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser_AssignsIncreasingIDs(t *testing.T) {
	repo, _ := newTestRepo(t)

	emails := []string{"a@campo.mx", "b@campo.mx", "c@campo.mx"}
	var prev uint
	for i, email := range emails {
		u, err := repo.RegisterUser("User", email, "pw", role.Consumer)
		require.NoError(t, err)
		if i == 0 {
			assert.EqualValues(t, 1, u.ID)
		}
		assert.Greater(t, u.ID, prev)
		prev = u.ID
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.RegisterUser("Ana", "ana@campo.mx", "pw", role.Producer)
	require.NoError(t, err)

	_, err = repo.RegisterUser("Otra Ana", "ana@campo.mx", "pw2", role.Consumer)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Состояние не изменилось
	u := repo.FindUserByEmail("ana@campo.mx")
	require.NotNil(t, u)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, role.Producer, u.Role)
}

func TestFindUserByEmail_Miss(t *testing.T) {
	repo, _ := newTestRepo(t)

	assert.Nil(t, repo.FindUserByEmail("nadie@campo.mx"))
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetUserByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserProfile(t *testing.T) {
	repo, _ := newTestRepo(t)

	u, err := repo.RegisterUser("Ana", "ana@campo.mx", "pw", role.Consumer)
	require.NoError(t, err)
	require.NoError(t, repo.SetCurrentUser(*u))

	updated, err := repo.UpdateUserProfile(u.ID, "Ana María", "ana@campo.mx", "+52 555 0101", "Calle 5")
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.Name)
	assert.Equal(t, "+52 555 0101", updated.Phone)

	// Сеансовая запись следует за профилем
	cur := repo.CurrentUser()
	require.NotNil(t, cur)
	assert.Equal(t, "Ana María", cur.Name)
}
