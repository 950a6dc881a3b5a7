package game

// Rejection codes. They are stable and safe to match on.
const (
	CodeWrongPhase        = "WRONG_PHASE"
	CodeBusy              = "BUSY"
	CodeGameOver          = "GAME_OVER"
	CodeStaleTimer        = "STALE_TIMER"
	CodeUnknownAction     = "UNKNOWN_ACTION"
	CodeUnknownPlayer     = "UNKNOWN_PLAYER"
	CodePlayerLimit       = "PLAYER_LIMIT"
	CodeInvalidName       = "INVALID_NAME"
	CodeInvalidAvatar     = "INVALID_AVATAR"
	CodeInvalidBranch     = "INVALID_BRANCH"
	CodeNotPurchasable    = "NOT_PURCHASABLE"
	CodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	CodeNotOwner          = "NOT_OWNER"
	CodeMaxLevel          = "MAX_LEVEL"
	CodeNotJailed         = "NOT_JAILED"
	CodeNotAtStart        = "NOT_AT_START"
	CodeUnknownFerry      = "UNKNOWN_FERRY"
)

// Rejection captures why an action was ignored.
type Rejection struct {
	Code    string
	Message string
}

// Error implements error so a rejection can travel through error returns.
func (r Rejection) Error() string {
	return r.Code + ": " + r.Message
}

// Decision is the outcome of reducing one action. A rejected action leaves
// the game exactly as it was apart from, at most, the status message.
type Decision struct {
	Accepted  bool
	Rejection *Rejection
	// Scheduled is set when the action started a timed transition. The
	// driver must deliver CompleteTimed{Seq} after Duration.
	Scheduled *Pending
}

// Accept returns an accepted decision.
func Accept(scheduled *Pending) Decision {
	return Decision{Accepted: true, Scheduled: scheduled}
}

// Reject returns a decision carrying a rejection.
func Reject(code, message string) Decision {
	return Decision{Rejection: &Rejection{Code: code, Message: message}}
}
