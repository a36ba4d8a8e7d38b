package game

import "errors"

// Rejections of decision operations. A rejected decision leaves the airport unchanged.
var (
	ErrInsufficientFunds  = errors.New("insufficient cash balance")
	ErrGearingExceeded    = errors.New("gearing limit exceeded")
	ErrInsufficientBudget = errors.New("insufficient marketing budget")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrUnknownCampaign    = errors.New("unknown marketing campaign")
	ErrUnknownProject     = errors.New("unknown capex project")
	ErrUnknownStrategy    = errors.New("unknown strategy")
	ErrSimulationComplete = errors.New("simulation complete")
)
