package client

import (
	"github.com/palemoky/lexio/internal/apperrors"
	"github.com/palemoky/lexio/internal/protocol"
)

// Unassigned is the identity sentinel used before player_assigned arrives.
const Unassigned = -1

// Role is the local player's position in the current turn, recomputed for every snapshot.
type Role struct {
	IsMyTurn  bool
	HasPassed bool
	IsLeader  bool
}

// CanPlay reports whether the Play affordance is enabled.
func (r Role) CanPlay() bool {
	return r.IsMyTurn && !r.HasPassed
}

// CanPass reports whether the Pass affordance is enabled. A leader with nothing on the table may never pass.
func (r Role) CanPass() bool {
	return r.IsMyTurn && !r.HasPassed && !r.IsLeader
}

// DeriveRole computes the role of myPlayerNum in s.
func DeriveRole(s *protocol.Snapshot, myPlayerNum int) (Role, error) {
	if myPlayerNum == Unassigned {
		return Role{}, apperrors.ErrIdentityUnassigned
	}
	if err := checkRenderable(s, myPlayerNum); err != nil {
		return Role{}, err
	}
	return Role{
		IsMyTurn:  s.CurrentPlayerIndex == myPlayerNum,
		HasPassed: s.Passed(myPlayerNum),
		IsLeader:  !s.LastPlayedHandInfo.HasLeader(),
	}, nil
}

func checkRenderable(s *protocol.Snapshot, myPlayerNum int) error {
	switch {
	case s == nil:
		return apperrors.Unrenderable("no snapshot")
	case len(s.PlayerHands) == 0:
		return apperrors.Unrenderable("player hands absent")
	case myPlayerNum < 0 || myPlayerNum >= len(s.PlayerHands):
		return apperrors.Unrenderable("identity outside the table")
	case s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.PlayerHands):
		return apperrors.Unrenderable("current player outside the table")
	}
	return nil
}
