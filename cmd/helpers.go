package cmd

import (
	"strings"

	"github.com/cronozapp/cronoz/internal/errors"
	"github.com/cronozapp/cronoz/internal/model"
)

// resolveActivity finds an activity by id or by name. Name matching is
// case-insensitive and must be unambiguous.
func resolveActivity(ref string) (*model.Activity, error) {
	activity, err := ctx.Tracker.Registry.Get(ref)
	if err != nil {
		return nil, err
	}
	if activity != nil {
		return activity, nil
	}

	activities, err := ctx.Tracker.Registry.List()
	if err != nil {
		return nil, err
	}

	var matches []model.Activity
	for _, a := range activities {
		if strings.EqualFold(a.Name, ref) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 0:
		return nil, errors.NewUserErrorWithField("activity", ref,
			"No such activity",
			"Use 'cronoz activity list' to see known activities")
	case 1:
		return &matches[0], nil
	default:
		return nil, errors.NewUserErrorWithField("activity", ref,
			"Activity name is ambiguous",
			"Refer to it by id instead")
	}
}

// activityName returns the display name for an activity id, falling back
// to the id itself for orphaned records.
func activityName(activities []model.Activity, activityID string) string {
	for _, a := range activities {
		if a.ID == activityID {
			return a.Name
		}
	}
	return activityID
}
