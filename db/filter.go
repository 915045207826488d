package db

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meditrack/models"
)

// BuildFilter translates the list filters into a Mongo predicate.
//
// The search text is matched as a case-insensitive literal substring of
// fullName, condition or roomNumber. The input is quoted before it reaches
// $regex so metacharacters in user input cannot change the match or stall
// the query. A department other than "All" must match exactly; it is not
// checked against the enum here, an unknown value simply matches nothing.
func BuildFilter(q models.ListQuery) bson.M {
	filter := bson.M{}

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"fullName": pattern},
			bson.M{"condition": pattern},
			bson.M{"roomNumber": pattern},
		}
	}
	if q.Department != "" && q.Department != models.AllDepartments {
		filter["department"] = q.Department
	}
	return filter
}
