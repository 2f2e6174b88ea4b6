package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
)

const testBotToken = "123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

func validIdentity() *models.Identity {
	return &models.Identity{
		ID:        99281932,
		FirstName: "Ann",
		LastName:  "K",
		Username:  "annk",
		PhotoURL:  "https://t.me/i/userpic/320/annk.jpg",
		AuthDate:  1735689600,
	}
}

func TestVerifyIdentity_AcceptsSignedPayload(t *testing.T) {
	id := validIdentity()
	id.Hash = SignIdentity(id, testBotToken)
	assert.NoError(t, VerifyIdentity(id, testBotToken))
}

func TestVerifyIdentity_RejectsTamperedField(t *testing.T) {
	id := validIdentity()
	id.Hash = SignIdentity(id, testBotToken)
	id.FirstName = "Mallory"
	assert.ErrorIs(t, VerifyIdentity(id, testBotToken), ErrBadSignature)
}

func TestVerifyIdentity_RejectsWrongBotToken(t *testing.T) {
	id := validIdentity()
	id.Hash = SignIdentity(id, testBotToken)
	assert.ErrorIs(t, VerifyIdentity(id, "999999:other-token"), ErrBadSignature)
}

func TestVerifyIdentity_OptionalFieldsOmitted(t *testing.T) {
	id := &models.Identity{ID: 7, FirstName: "Bob", AuthDate: 1735689600}
	id.Hash = SignIdentity(id, testBotToken)
	require.NoError(t, VerifyIdentity(id, testBotToken))

	// adding a field afterwards changes the payload
	id.Username = "bob"
	assert.ErrorIs(t, VerifyIdentity(id, testBotToken), ErrBadSignature)
}
