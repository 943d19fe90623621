package access

import "errors"

var (
	// ErrMissingEdgeHeading indicates the turn-delay model's heading
	// table had no entry for one of the two edges meeting at a turn.
	ErrMissingEdgeHeading = errors.New("access: missing edge heading table entry")

	// ErrUnknownTurnCategory indicates no delay is configured for a
	// classified TurnCategory. TurnDelayService does not return it: a
	// category absent from its delays map counts as zero delay.
	ErrUnknownTurnCategory = errors.New("access: no delay configured for turn category")
)
