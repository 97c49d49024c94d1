package domain

import (
	"time"

	"github.com/vfg2006/tiktok-ads-pipeline/pkg/utils"
)

// DateRange is an inclusive calendar interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRangeFromMode(mode string, now time.Time) (DateRange, error) {
	start, end, err := utils.ResolveMode(mode, now)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: start, End: end}, nil
}

// Days lists every day of the range in order.
func (r DateRange) Days() []time.Time {
	return utils.DaysBetween(r.Start, r.End)
}

// Label stamps ingested rows with the range they were loaded for.
func (r DateRange) Label() string {
	return utils.FormatDate(r.Start) + "_to_" + utils.FormatDate(r.End)
}
