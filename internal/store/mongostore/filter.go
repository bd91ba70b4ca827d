package mongostore

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// searchOr builds the case-insensitive substring match used by the
// free-text search parameter: an $or of anchored-nowhere regexes over
// the given fields. User input is quoted so it is matched literally.
func searchOr(q string, fields ...string) bson.M {
	pattern := regexp.QuoteMeta(q)
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
	}
	return bson.M{"$or": or}
}

// startOfToday is the "upcoming" boundary: an event whose date is today
// or later counts as upcoming.
func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
