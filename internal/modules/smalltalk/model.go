// README: Small-talk quota errors and defaults.
package smalltalk

import "errors"

// ErrQuotaExhausted is returned when the daily small-talk call budget is spent.
var ErrQuotaExhausted = errors.New("small-talk quota exhausted")

// DefaultDailyCalls is the number of model calls allowed per day.
const DefaultDailyCalls = 200
