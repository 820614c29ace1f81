package sheets

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// OrderIDPrefix starts every generated order id.
const OrderIDPrefix = "KFP"

// GenerateOrderID returns KFP + the last six digits of the unix millisecond
// clock + three random digits, e.g. KFP482913057.
func GenerateOrderID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return fmt.Sprintf("%s%s%03d", OrderIDPrefix, ms, rand.IntN(1000))
}
