package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairIDIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairID("u1", "s1"), PairID("s1", "u1"))
	assert.Equal(t, "s1_u1", PairID("u1", "s1"))
}

func TestHasParticipant(t *testing.T) {
	conversation := &Conversation{ParticipantIDs: []string{"u1", "s1"}}

	assert.True(t, conversation.HasParticipant("u1"))
	assert.True(t, conversation.HasParticipant("s1"))
	assert.False(t, conversation.HasParticipant("u2"))
}

func TestOtherParticipant(t *testing.T) {
	conversation := &Conversation{ParticipantIDs: []string{"u1", "s1"}}

	assert.Equal(t, "s1", conversation.OtherParticipant("u1"))
	assert.Equal(t, "u1", conversation.OtherParticipant("s1"))
	assert.Equal(t, "u1", conversation.OtherParticipant("stranger"))
}
