package state

import (
	"testing"

	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestState_SetProfileSyncsAuthUser(t *testing.T) {
	st := State{}
	st.Auth.User = &models.User{ID: "u1", Email: "a@example.com", Username: "alice", Role: models.RoleUser}

	st.SetProfile(models.User{Username: "alice2", ReviewCount: 4})

	assert.Equal(t, "alice2", st.Profile.Profile.Username)
	assert.Equal(t, "alice2", st.Auth.User.Username)
	assert.Equal(t, "a@example.com", st.Auth.User.Email)
	assert.Equal(t, 4, st.Auth.User.ReviewCount)
}

func TestState_SetProfileWithoutAuthUser(t *testing.T) {
	st := State{}
	st.Profile.Error = "old failure"

	st.SetProfile(models.User{ID: "u1"})

	assert.Equal(t, "u1", st.Auth.User.ID)
	assert.Empty(t, st.Profile.Error)
	assert.NotSame(t, st.Profile.Profile, st.Auth.User)
}

func TestCompanyDetailsState_FieldLifecycle(t *testing.T) {
	d := newState(newCaches()).Details

	d.Begin(FieldStocks)
	assert.True(t, d.Loading[FieldStocks])

	d.Fail(FieldStocks, "boom")
	assert.False(t, d.Loading[FieldStocks])
	assert.Equal(t, "boom", d.Errors[FieldStocks])

	d.Begin(FieldStocks)
	assert.NotContains(t, d.Errors, FieldStocks)
	d.Done(FieldStocks)
	assert.False(t, d.Loading[FieldStocks])
}

func TestAuthStatus_String(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "pending-verification", PendingVerification.String())
	assert.Equal(t, "authenticated", Authenticated.String())
}
